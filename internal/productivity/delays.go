package productivity

import (
	"fmt"
	"sort"
)

// DelayFactor identifies which dimension a delay pattern correlates with.
type DelayFactor string

const (
	FactorWeekday  DelayFactor = "weekday"
	FactorHour     DelayFactor = "hour"
	FactorTaskType DelayFactor = "task_type"
)

// DelayPattern is one recurring delay correlation.
type DelayPattern struct {
	Factor       DelayFactor `json:"factor"`
	Key          string      `json:"key"`
	DelayedCount int         `json:"delayed_count"`
	// Share is the delayed fraction of the key's occurrences; only
	// meaningful for the task_type factor.
	Share float64 `json:"share,omitempty"`
}

// Thresholds for surfacing a delay pattern: a weekday or hour needs at
// least this many delayed events, a task type needs a majority of its
// occurrences delayed.
const (
	minDelayedOccurrences = 3
	delayShareThreshold   = 0.5
)

// DelayPatterns surfaces weekdays, hours, and task types where delays
// cluster. Results are ordered weekday, hour, task type, each sorted by
// delayed count descending.
func (l *Learner) DelayPatterns() []DelayPattern {
	byWeekday := map[int]int{}
	byHour := map[int]int{}
	delayedByType := map[string]int{}
	totalByType := map[string]int{}

	for _, ev := range l.hist.Tasks {
		totalByType[ev.Type]++
		if !ev.WasDelayed {
			continue
		}
		byWeekday[ev.DayOfWeek]++
		byHour[ev.Hour]++
		delayedByType[ev.Type]++
	}

	var out []DelayPattern
	for _, r := range rank(byWeekday, 0) {
		if r.Count >= minDelayedOccurrences {
			out = append(out, DelayPattern{
				Factor:       FactorWeekday,
				Key:          fmt.Sprintf("%d", r.Value),
				DelayedCount: r.Count,
			})
		}
	}
	for _, r := range rank(byHour, 0) {
		if r.Count >= minDelayedOccurrences {
			out = append(out, DelayPattern{
				Factor:       FactorHour,
				Key:          fmt.Sprintf("%d", r.Value),
				DelayedCount: r.Count,
			})
		}
	}

	types := make([]string, 0, len(delayedByType))
	for t := range delayedByType {
		types = append(types, t)
	}
	sort.Strings(types)
	var typed []DelayPattern
	for _, t := range types {
		share := float64(delayedByType[t]) / float64(totalByType[t])
		if share > delayShareThreshold {
			typed = append(typed, DelayPattern{
				Factor:       FactorTaskType,
				Key:          t,
				DelayedCount: delayedByType[t],
				Share:        share,
			})
		}
	}
	sort.SliceStable(typed, func(i, j int) bool {
		return typed[i].DelayedCount > typed[j].DelayedCount
	})
	return append(out, typed...)
}
