// Package productivity keeps a per-user log of completed work and derives
// scheduling statistics from it. The log is persisted through a
// store.Repository and capped so the file stays small; ranking is by raw
// frequency, with no recency weighting.
package productivity

import (
	"sort"
	"time"

	"waqt/internal/store"
)

// maxEvents caps the task log; the oldest entries are trimmed first.
const maxEvents = 500

// defaultDurationMinutes is assumed for task types with no history.
const defaultDurationMinutes = 30.0

// TaskEvent is one completed task.
type TaskEvent struct {
	Type        string    `json:"type"`
	Duration    int       `json:"duration"` // minutes
	Hour        int       `json:"hour"`
	DayOfWeek   int       `json:"day_of_week"` // 0 = Sunday
	CompletedAt time.Time `json:"completed_at"`
	WasDelayed  bool      `json:"was_delayed"`
}

// Session is one recorded work session.
type Session struct {
	StartHour       int       `json:"start_hour"`
	EndHour         int       `json:"end_hour"`
	DayOfWeek       int       `json:"day_of_week"`
	DurationMinutes int       `json:"duration_minutes"`
	ActionsCount    int       `json:"actions_count"`
	Date            time.Time `json:"date"`
}

// History is the persisted store shape for one user.
type History struct {
	Tasks    []TaskEvent `json:"tasks"`
	Sessions []Session   `json:"sessions"`
}

// EmptyHistory is the default for missing or corrupt store files.
func EmptyHistory() History {
	return History{Tasks: []TaskEvent{}, Sessions: []Session{}}
}

// Learner wraps one user's history. Not safe for concurrent use; the
// caller serializes access per user.
type Learner struct {
	repo store.Repository[History]
	hist History
}

// NewLearner loads the user's history from the repository.
func NewLearner(repo store.Repository[History]) (*Learner, error) {
	hist, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Learner{repo: repo, hist: hist}, nil
}

// RecordTaskCompletion appends a completion event and persists. The log
// is trimmed to the most recent maxEvents entries.
func (l *Learner) RecordTaskCompletion(taskType string, durationMinutes int, completedAt time.Time, wasDelayed bool) error {
	l.hist.Tasks = append(l.hist.Tasks, TaskEvent{
		Type:        taskType,
		Duration:    durationMinutes,
		Hour:        completedAt.Hour(),
		DayOfWeek:   int(completedAt.Weekday()),
		CompletedAt: completedAt,
		WasDelayed:  wasDelayed,
	})
	if n := len(l.hist.Tasks); n > maxEvents {
		l.hist.Tasks = append([]TaskEvent(nil), l.hist.Tasks[n-maxEvents:]...)
	}
	return l.repo.Save(l.hist)
}

// RecordSession appends a work session and persists.
func (l *Learner) RecordSession(s Session) error {
	l.hist.Sessions = append(l.hist.Sessions, s)
	if n := len(l.hist.Sessions); n > maxEvents {
		l.hist.Sessions = append([]Session(nil), l.hist.Sessions[n-maxEvents:]...)
	}
	return l.repo.Save(l.hist)
}

// EventCount returns the size of the task log.
func (l *Learner) EventCount() int { return len(l.hist.Tasks) }

// Ranked is a frequency-ranked hour or weekday.
type Ranked struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

func rank(counts map[int]int, n int) []Ranked {
	out := make([]Ranked, 0, len(counts))
	for v, c := range counts {
		out = append(out, Ranked{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// BestHours returns the n hours of day with the most completions.
func (l *Learner) BestHours(n int) []Ranked {
	counts := map[int]int{}
	for _, ev := range l.hist.Tasks {
		counts[ev.Hour]++
	}
	return rank(counts, n)
}

// BestDays returns the n weekdays (0 = Sunday) with the most completions.
func (l *Learner) BestDays(n int) []Ranked {
	counts := map[int]int{}
	for _, ev := range l.hist.Tasks {
		counts[ev.DayOfWeek]++
	}
	return rank(counts, n)
}

// BusiestSessionHours returns the n session start hours ranked by total
// recorded minutes.
func (l *Learner) BusiestSessionHours(n int) []Ranked {
	counts := map[int]int{}
	for _, s := range l.hist.Sessions {
		counts[s.StartHour] += s.DurationMinutes
	}
	return rank(counts, n)
}

// TopHour returns the most productive hour, or fallback with no history.
func (l *Learner) TopHour(fallback int) int {
	best := l.BestHours(1)
	if len(best) == 0 {
		return fallback
	}
	return best[0].Value
}

// AverageDuration returns the mean duration in minutes for a task type,
// or the 30-minute default when no history exists for it.
func (l *Learner) AverageDuration(taskType string) float64 {
	total, count := 0, 0
	for _, ev := range l.hist.Tasks {
		if ev.Type == taskType {
			total += ev.Duration
			count++
		}
	}
	if count == 0 {
		return defaultDurationMinutes
	}
	return float64(total) / float64(count)
}

// Confidence labels how much history backs an estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Estimate is a duration prediction with its confidence.
type Estimate struct {
	Minutes    float64    `json:"minutes"`
	Samples    int        `json:"samples"`
	Confidence Confidence `json:"confidence"`
}

// PredictCompletionTime estimates how long a task of the given type will
// take. Confidence follows sample-count thresholds: >=20 high, >=5
// medium, else low.
func (l *Learner) PredictCompletionTime(taskType string) Estimate {
	samples := 0
	for _, ev := range l.hist.Tasks {
		if ev.Type == taskType {
			samples++
		}
	}
	conf := ConfidenceLow
	switch {
	case samples >= 20:
		conf = ConfidenceHigh
	case samples >= 5:
		conf = ConfidenceMedium
	}
	return Estimate{
		Minutes:    l.AverageDuration(taskType),
		Samples:    samples,
		Confidence: conf,
	}
}
