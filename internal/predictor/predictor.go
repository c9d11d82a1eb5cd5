// Package predictor assesses whether tasks can meet their deadlines by
// combining working-calendar availability with learned task durations.
// Predictions are derived values and never persisted.
package predictor

import (
	"fmt"
	"math"
	"sort"
	"time"

	"waqt/internal/model"
	"waqt/internal/productivity"
	"waqt/internal/workcal"
)

// Margin thresholds, in working days.
const (
	safeMarginDays  = 2
	startBufferDays = 1
)

// Predictor binds a working calendar to a user's learner.
type Predictor struct {
	cal     *workcal.Calendar
	learner *productivity.Learner
}

// New builds a Predictor.
func New(cal *workcal.Calendar, learner *productivity.Learner) *Predictor {
	return &Predictor{cal: cal, learner: learner}
}

// EstimateDays converts the learner's average duration for a task type
// into whole working days, using the calendar's configured day length.
func (p *Predictor) EstimateDays(taskType string) int {
	minutes := p.learner.AverageDuration(taskType)
	hoursPerDay := p.cal.Config().WorkHoursPerDay()
	if hoursPerDay <= 0 {
		hoursPerDay = 8
	}
	days := int(math.Ceil(minutes / 60 / float64(hoursPerDay)))
	if days < 1 {
		days = 1
	}
	return days
}

// WillMeetDeadline classifies a deadline given a start date: margin of 2+
// working days is safe, 0-1 is tight, negative is at risk. A deadline
// already behind the start counts zero available days. The recommended
// start leaves the estimate plus one buffer working day before the
// deadline.
func (p *Predictor) WillMeetDeadline(taskType string, deadline, start time.Time) model.Prediction {
	available := 0
	if !model.DateOnly(deadline).Before(model.DateOnly(start)) {
		available = p.cal.WorkingDaysBetween(start, deadline)
	}
	estimated := p.EstimateDays(taskType)
	margin := available - estimated

	status := model.StatusAtRisk
	switch {
	case margin >= safeMarginDays:
		status = model.StatusSafe
	case margin >= 0:
		status = model.StatusTight
	}

	return model.Prediction{
		Status:           status,
		AvailableDays:    available,
		EstimatedDays:    estimated,
		MarginDays:       margin,
		RecommendedStart: p.cal.SubtractWorkingDays(deadline, estimated+startBufferDays),
	}
}

// GenerateAlerts emits one alert per tight or at-risk task, most severe
// first. A deadline falling on today produces an additional same-day
// alert regardless of margin.
func (p *Predictor) GenerateAlerts(tasks []model.Task, today time.Time) []model.Alert {
	var alerts []model.Alert

	for _, task := range tasks {
		pred := p.WillMeetDeadline(task.Type, task.Deadline, today)

		switch pred.Status {
		case model.StatusAtRisk:
			alerts = append(alerts, model.Alert{
				TaskID:   task.ID,
				TaskType: task.Type,
				Severity: model.SeverityCritical,
				Status:   pred.Status,
				Message:  fmt.Sprintf("task %s is short %d working days", task.ID, -pred.MarginDays),
				Deadline: task.Deadline,
			})
		case model.StatusTight:
			alerts = append(alerts, model.Alert{
				TaskID:   task.ID,
				TaskType: task.Type,
				Severity: model.SeverityWarning,
				Status:   pred.Status,
				Message:  fmt.Sprintf("task %s has only %d spare working days", task.ID, pred.MarginDays),
				Deadline: task.Deadline,
			})
		}

		if model.SameDay(task.Deadline, today) {
			alerts = append(alerts, model.Alert{
				TaskID:   task.ID,
				TaskType: task.Type,
				Severity: model.SeverityCritical,
				Status:   pred.Status,
				Message:  fmt.Sprintf("task %s is due today", task.ID),
				Deadline: task.Deadline,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity != alerts[j].Severity {
			return alerts[i].Severity > alerts[j].Severity
		}
		return alerts[i].Deadline.Before(alerts[j].Deadline)
	})
	return alerts
}
