package productivity

import (
	"testing"
	"time"

	"waqt/internal/store"
)

func newTestLearner(t *testing.T) (*Learner, *store.Memory[History]) {
	t.Helper()
	repo := store.NewMemory(EmptyHistory)
	l, err := NewLearner(repo)
	if err != nil {
		t.Fatalf("NewLearner: %v", err)
	}
	return l, repo
}

// at builds a completion timestamp on a fixed calendar: 2024-11-03 is a
// Sunday, so weekday arithmetic in the tests is readable.
func at(dayOffset, hour int) time.Time {
	return time.Date(2024, time.November, 3+dayOffset, hour, 0, 0, 0, time.UTC)
}

func TestAverageDurationDefault(t *testing.T) {
	l, _ := newTestLearner(t)
	if got := l.AverageDuration("email"); got != 30 {
		t.Errorf("no-history average = %v, want 30", got)
	}
}

func TestAverageDurationPerType(t *testing.T) {
	l, _ := newTestLearner(t)
	for _, d := range []int{20, 40, 60} {
		if err := l.RecordTaskCompletion("report", d, at(0, 10), false); err != nil {
			t.Fatalf("RecordTaskCompletion: %v", err)
		}
	}
	if err := l.RecordTaskCompletion("email", 5, at(0, 10), false); err != nil {
		t.Fatalf("RecordTaskCompletion: %v", err)
	}

	if got := l.AverageDuration("report"); got != 40 {
		t.Errorf("report average = %v, want 40", got)
	}
	if got := l.AverageDuration("email"); got != 5 {
		t.Errorf("email average = %v, want 5", got)
	}
}

func TestPredictConfidenceThresholds(t *testing.T) {
	l, _ := newTestLearner(t)

	if got := l.PredictCompletionTime("report").Confidence; got != ConfidenceLow {
		t.Errorf("0 samples = %s, want low", got)
	}

	for i := 0; i < 5; i++ {
		l.RecordTaskCompletion("report", 60, at(0, 10), false)
	}
	if est := l.PredictCompletionTime("report"); est.Confidence != ConfidenceMedium || est.Samples != 5 {
		t.Errorf("5 samples = %+v, want medium", est)
	}

	for i := 0; i < 15; i++ {
		l.RecordTaskCompletion("report", 60, at(0, 10), false)
	}
	if est := l.PredictCompletionTime("report"); est.Confidence != ConfidenceHigh || est.Samples != 20 {
		t.Errorf("20 samples = %+v, want high", est)
	}
}

func TestBestHoursAndDays(t *testing.T) {
	l, _ := newTestLearner(t)

	// Three completions at 09:00 on Sunday, one at 14:00 on Tuesday.
	for i := 0; i < 3; i++ {
		l.RecordTaskCompletion("report", 30, at(0, 9), false)
	}
	l.RecordTaskCompletion("report", 30, at(2, 14), false)

	hours := l.BestHours(2)
	if len(hours) != 2 || hours[0].Value != 9 || hours[0].Count != 3 {
		t.Errorf("BestHours = %+v", hours)
	}
	days := l.BestDays(7)
	if days[0].Value != int(time.Sunday) || days[0].Count != 3 {
		t.Errorf("BestDays = %+v", days)
	}

	if got := l.TopHour(10); got != 9 {
		t.Errorf("TopHour = %d, want 9", got)
	}
}

func TestBusiestSessionHours(t *testing.T) {
	l, _ := newTestLearner(t)
	l.RecordSession(Session{StartHour: 9, EndHour: 11, DurationMinutes: 120, Date: at(0, 9)})
	l.RecordSession(Session{StartHour: 9, EndHour: 10, DurationMinutes: 60, Date: at(1, 9)})
	l.RecordSession(Session{StartHour: 14, EndHour: 15, DurationMinutes: 60, Date: at(1, 14)})

	got := l.BusiestSessionHours(2)
	if len(got) != 2 || got[0].Value != 9 || got[0].Count != 180 {
		t.Errorf("BusiestSessionHours = %+v", got)
	}
	if got[1].Value != 14 || got[1].Count != 60 {
		t.Errorf("second hour = %+v", got[1])
	}
}

func TestTopHourFallback(t *testing.T) {
	l, _ := newTestLearner(t)
	if got := l.TopHour(10); got != 10 {
		t.Errorf("TopHour with no history = %d, want fallback 10", got)
	}
}

func TestEventLogCap(t *testing.T) {
	l, _ := newTestLearner(t)
	for i := 0; i < maxEvents+25; i++ {
		// Vary the duration so the surviving window is identifiable.
		l.RecordTaskCompletion("report", i, at(0, 9), false)
	}
	if got := l.EventCount(); got != maxEvents {
		t.Errorf("EventCount = %d, want %d", got, maxEvents)
	}
	// The oldest 25 events were trimmed, so the minimum duration is 25.
	if got := l.hist.Tasks[0].Duration; got != 25 {
		t.Errorf("oldest surviving duration = %d, want 25", got)
	}
}

func TestHistoryPersistsThroughRepo(t *testing.T) {
	l, repo := newTestLearner(t)
	l.RecordTaskCompletion("report", 45, at(0, 9), false)
	l.RecordSession(Session{StartHour: 9, EndHour: 11, DayOfWeek: 0, DurationMinutes: 120, ActionsCount: 12, Date: at(0, 9)})

	reloaded, err := NewLearner(repo)
	if err != nil {
		t.Fatalf("NewLearner reload: %v", err)
	}
	if reloaded.EventCount() != 1 {
		t.Errorf("reloaded EventCount = %d, want 1", reloaded.EventCount())
	}
	if len(reloaded.hist.Sessions) != 1 || reloaded.hist.Sessions[0].DurationMinutes != 120 {
		t.Errorf("reloaded sessions = %+v", reloaded.hist.Sessions)
	}
}

func TestDelayPatterns(t *testing.T) {
	l, _ := newTestLearner(t)

	// Three delayed completions on Monday at 16:00; the "review" type is
	// delayed in two of its three occurrences.
	for i := 0; i < 3; i++ {
		l.RecordTaskCompletion("review", 30, at(1, 16), i < 2)
	}
	// Plenty of on-time work elsewhere.
	for i := 0; i < 5; i++ {
		l.RecordTaskCompletion("email", 10, at(0, 9), false)
	}
	// One more delayed event on Monday 16:00 of a different type, so the
	// weekday and hour counts reach three.
	l.RecordTaskCompletion("report", 30, at(1, 16), true)

	patterns := l.DelayPatterns()

	// Keep the first (highest-ranked) pattern per factor; "report" also
	// qualifies as a fully delayed type but ranks below "review".
	var weekday, hour, typed *DelayPattern
	for i := range patterns {
		p := &patterns[i]
		switch {
		case p.Factor == FactorWeekday && weekday == nil:
			weekday = p
		case p.Factor == FactorHour && hour == nil:
			hour = p
		case p.Factor == FactorTaskType && typed == nil:
			typed = p
		}
	}

	if weekday == nil || weekday.Key != "1" || weekday.DelayedCount != 3 {
		t.Errorf("weekday pattern = %+v", weekday)
	}
	if hour == nil || hour.Key != "16" || hour.DelayedCount != 3 {
		t.Errorf("hour pattern = %+v", hour)
	}
	if typed == nil || typed.Key != "review" || typed.DelayedCount != 2 {
		t.Errorf("type pattern = %+v", typed)
	}
	if typed != nil && typed.Share <= 0.5 {
		t.Errorf("type share = %v, want > 0.5", typed.Share)
	}
}

func TestDelayPatternsBelowThreshold(t *testing.T) {
	l, _ := newTestLearner(t)

	// Two delayed events: under the three-occurrence floor, and the type
	// share for "email" is 2 of 5, under the majority threshold.
	l.RecordTaskCompletion("email", 10, at(1, 16), true)
	l.RecordTaskCompletion("email", 10, at(1, 16), true)
	for i := 0; i < 3; i++ {
		l.RecordTaskCompletion("email", 10, at(0, 9), false)
	}

	if got := l.DelayPatterns(); len(got) != 0 {
		t.Errorf("DelayPatterns = %+v, want none", got)
	}
}
