// Package ics reads company-closure feeds from local ICS files and writes
// optimized schedules back out as ICS. Closures become extra non-working
// days for the working calendar.
package ics

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	appLog "waqt/internal/log"
)

const maxOccurrencesPerEvent = 1000

// Closure is one span of non-working dates, [Start, End) at date
// granularity.
type Closure struct {
	Start   time.Time
	End     time.Time
	Summary string
}

// Covers reports whether the closure includes the given date.
func (c Closure) Covers(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(c.Start) && day.Before(c.End)
}

// LoadClosures parses the ICS file at path and returns every closure that
// intersects [from, to]. Recurring events are expanded (RRULE with EXDATE
// honored); events that fail to parse are logged and skipped.
func LoadClosures(path string, from, to time.Time) ([]Closure, error) {
	if path == "" {
		return nil, errors.New("ics: empty path")
	}
	if to.Before(from) {
		return nil, errors.New("ics: range end before start")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		appLog.Error("ics parse failed", err, "path", path)
		return nil, err
	}

	out := make([]Closure, 0)
	for _, ve := range cal.Events() {
		closures, perr := expandEvent(ve, from, to)
		if perr != nil {
			appLog.Error("ics event skipped", perr, "path", path)
			continue
		}
		out = append(out, closures...)
	}

	appLog.Info("ics closures loaded", "path", path, "count", len(out))
	return out, nil
}

func expandEvent(ve *ical.VEvent, from, to time.Time) ([]Closure, error) {
	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, err
	}
	end, eerr := ve.GetEndAt()
	if eerr != nil || !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	days := daySpan(start, end)

	var rawRRule string
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		rawRRule = p.Value
	}

	if rawRRule == "" {
		c := makeClosure(start, days, summary)
		if c.End.Before(dateOf(from)) || c.Start.After(dateOf(to)) {
			return nil, nil
		}
		return []Closure{c}, nil
	}

	r, err := rrule.StrToRRule(rawRRule)
	if err != nil {
		return nil, err
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range exDates(ve) {
		set.ExDate(ex.In(start.Location()))
	}

	occ := set.Between(from.In(start.Location()), to.In(start.Location()), true)
	if len(occ) > maxOccurrencesPerEvent {
		occ = occ[:maxOccurrencesPerEvent]
		appLog.Warn("ics recurrence truncated", "summary", summary, "cap", maxOccurrencesPerEvent)
	}

	out := make([]Closure, 0, len(occ))
	for _, t := range occ {
		out = append(out, makeClosure(t, days, summary))
	}
	return out, nil
}

func exDates(ve *ical.VEvent) []time.Time {
	var out []time.Time
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, err := parseICSTime(part); err == nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// parseICSTime handles the basic DATE / DATE-TIME / UTC value forms.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.UTC)
	}
	return time.ParseInLocation("20060102", v, time.UTC)
}

func makeClosure(start time.Time, days int, summary string) Closure {
	s := dateOf(start)
	return Closure{Start: s, End: s.AddDate(0, 0, days), Summary: summary}
}

func daySpan(start, end time.Time) int {
	s := dateOf(start)
	e := dateOf(end)
	n := int(e.Sub(s).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
