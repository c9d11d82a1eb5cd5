package model

import "time"

// Task is the external task record this engine reads but does not own.
// Start and Deadline are date-granular; the time-of-day component is
// ignored by all consumers.
type Task struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Title    string    `json:"title,omitempty"`
	Priority int       `json:"priority"`
	Start    time.Time `json:"start"`
	Deadline time.Time `json:"deadline"`
}

// DeadlineStatus classifies how safely a task can meet its deadline.
type DeadlineStatus string

const (
	StatusSafe   DeadlineStatus = "safe"
	StatusTight  DeadlineStatus = "tight"
	StatusAtRisk DeadlineStatus = "at_risk"
)

// Prediction is the derived (never persisted) deadline assessment.
type Prediction struct {
	Status           DeadlineStatus `json:"status"`
	AvailableDays    int            `json:"available_days"`
	EstimatedDays    int            `json:"estimated_days"`
	MarginDays       int            `json:"margin_days"`
	RecommendedStart time.Time      `json:"recommended_start"`
}

// AlertSeverity orders alerts for display; higher is more urgent.
type AlertSeverity int

const (
	SeverityInfo AlertSeverity = iota
	SeverityWarning
	SeverityCritical
)

// Alert is handed to the notification layer for rendering.
type Alert struct {
	TaskID   string         `json:"task_id"`
	TaskType string         `json:"task_type"`
	Severity AlertSeverity  `json:"severity"`
	Status   DeadlineStatus `json:"status"`
	Message  string         `json:"message"`
	Deadline time.Time      `json:"deadline"`
}

// ScheduledTask is one slot in an optimized schedule.
type ScheduledTask struct {
	Task Task      `json:"task"`
	Day  time.Time `json:"day"`
	Hour int       `json:"hour"`
}

// RescheduledTask pairs a shifted task with its new dates.
type RescheduledTask struct {
	Task        Task      `json:"task"`
	NewStart    time.Time `json:"new_start"`
	NewDeadline time.Time `json:"new_deadline"`
}

// MeetingSlot is a scored meeting-time suggestion.
type MeetingSlot struct {
	Day   time.Time `json:"day"`
	Hour  int       `json:"hour"`
	Score float64   `json:"score"`
}

// DateOnly truncates t to midnight in its own location. All date-granular
// comparisons in the engine go through this.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
