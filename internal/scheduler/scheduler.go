// Package scheduler reschedules tasks around delays, lays out optimized
// schedules, and suggests meeting slots. It consults the working calendar
// for day placement and the productivity learner for hours and estimates.
package scheduler

import (
	"math"
	"sort"
	"time"

	"waqt/internal/model"
	"waqt/internal/productivity"
	"waqt/internal/workcal"
)

// shareDayThresholdHours is the estimated duration under which a task
// does not consume its scheduling day on its own.
const shareDayThresholdHours = 4.0

// meetingHorizonDays is how many working days ahead meeting slots are
// considered.
const meetingHorizonDays = 14

// Scheduler binds the working calendar and a user's learner.
type Scheduler struct {
	cal     *workcal.Calendar
	learner *productivity.Learner
}

// New builds a Scheduler.
func New(cal *workcal.Calendar, learner *productivity.Learner) *Scheduler {
	return &Scheduler{cal: cal, learner: learner}
}

// RescheduleOnDelay shifts every task that starts strictly after the
// delayed task's original deadline forward by the delay, counted in
// working days. Tasks starting on or before the original deadline are
// left untouched and absent from the result.
func (s *Scheduler) RescheduleOnDelay(delayed model.Task, newDeadline time.Time, others []model.Task) []model.RescheduledTask {
	origDeadline := model.DateOnly(delayed.Deadline)
	delayDays := int(model.DateOnly(newDeadline).Sub(origDeadline).Hours() / 24)
	if delayDays <= 0 {
		return nil
	}

	var out []model.RescheduledTask
	for _, task := range others {
		if task.ID == delayed.ID {
			continue
		}
		if !model.DateOnly(task.Start).After(origDeadline) {
			continue
		}
		out = append(out, model.RescheduledTask{
			Task:        task,
			NewStart:    s.cal.AddWorkingDays(task.Start, delayDays),
			NewDeadline: s.cal.AddWorkingDays(task.Deadline, delayDays),
		})
	}
	return out
}

// OptimizeSchedule assigns tasks to working days starting from the given
// date. Tasks are ordered by priority descending then deadline ascending;
// each gets the learner's most productive hour. Only tasks estimated at
// four or more hours consume their day - shorter tasks share it.
func (s *Scheduler) OptimizeSchedule(tasks []model.Task, from time.Time) []model.ScheduledTask {
	ordered := append([]model.Task(nil), tasks...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Deadline.Before(ordered[j].Deadline)
	})

	hour := s.learner.TopHour(s.cal.Config().WorkStart)
	cursor := s.cal.NextWorkingDay(from)

	out := make([]model.ScheduledTask, 0, len(ordered))
	for _, task := range ordered {
		out = append(out, model.ScheduledTask{Task: task, Day: cursor, Hour: hour})
		estimatedHours := s.learner.AverageDuration(task.Type) / 60
		if estimatedHours >= shareDayThresholdHours {
			cursor = s.cal.AddWorkingDays(cursor, 1)
		}
	}
	return out
}

// SuggestMeetingTime scores every (working day, preferred hour) slot over
// a 14-working-day horizon from earliest and returns the top 5 by score.
// Scoring favors earlier entries in preferredHours, the attendee's
// historically productive weekdays, and proximity to earliest. Hours
// where the meeting would overrun the configured work end are excluded.
func (s *Scheduler) SuggestMeetingTime(duration time.Duration, earliest time.Time, preferredHours []int) []model.MeetingSlot {
	cfg := s.cal.Config()
	if len(preferredHours) == 0 {
		for h := cfg.WorkStart; h < cfg.WorkEnd; h++ {
			preferredHours = append(preferredHours, h)
		}
	}

	durHours := int(math.Ceil(duration.Hours()))
	if durHours < 1 {
		durHours = 1
	}
	hours := make([]int, 0, len(preferredHours))
	for _, h := range preferredHours {
		if h+durHours <= cfg.WorkEnd {
			hours = append(hours, h)
		}
	}
	preferredHours = hours

	best := s.learner.BestDays(7)
	dayRank := map[int]int{}
	for i, r := range best {
		dayRank[r.Value] = len(best) - i
	}

	var slots []model.MeetingSlot
	day := s.cal.NextWorkingDay(earliest)
	for i := 0; i < meetingHorizonDays; i++ {
		for pi, hour := range preferredHours {
			score := float64(len(preferredHours)-pi) * 2 // hour preference
			score += float64(dayRank[int(day.Weekday())]) // weekday preference
			score += float64(meetingHorizonDays-i) * 0.5  // proximity to earliest
			slots = append(slots, model.MeetingSlot{Day: day, Hour: hour, Score: score})
		}
		day = s.cal.AddWorkingDays(day, 1)
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Score != slots[j].Score {
			return slots[i].Score > slots[j].Score
		}
		if !slots[i].Day.Equal(slots[j].Day) {
			return slots[i].Day.Before(slots[j].Day)
		}
		return slots[i].Hour < slots[j].Hour
	})
	if len(slots) > 5 {
		slots = slots[:5]
	}
	return slots
}
