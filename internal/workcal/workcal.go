// Package workcal answers working-day questions for one country: weekend
// set, holiday spans, and imported closure days. Day arithmetic walks one
// day at a time; ranges here are business-scale, so the linear scan keeps
// the holiday logic trivially correct.
package workcal

import (
	"errors"
	"time"

	"waqt/internal/holiday"
	"waqt/internal/ics"
	appLog "waqt/internal/log"
)

// Config describes one country's working week. WorkingDays and
// WeekendDays must partition the seven weekdays.
type Config struct {
	Country     string
	WorkingDays map[time.Weekday]bool
	WeekendDays map[time.Weekday]bool
	WorkStart   int // hour, 24h clock
	WorkEnd     int
}

// NewConfig derives the working set from a weekend set, keeping the two
// partitioned by construction.
func NewConfig(country string, weekend map[time.Weekday]bool, workStart, workEnd int) (Config, error) {
	if len(weekend) >= 7 {
		return Config{}, errors.New("workcal: weekend set covers the whole week")
	}
	working := make(map[time.Weekday]bool, 7-len(weekend))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if !weekend[wd] {
			working[wd] = true
		}
	}
	if workStart <= 0 || workEnd <= workStart {
		workStart, workEnd = 9, 17
	}
	return Config{
		Country:     country,
		WorkingDays: working,
		WeekendDays: weekend,
		WorkStart:   workStart,
		WorkEnd:     workEnd,
	}, nil
}

// WorkHoursPerDay returns the length of the configured working day.
func (c Config) WorkHoursPerDay() int {
	return c.WorkEnd - c.WorkStart
}

// Calendar is the working-day oracle.
type Calendar struct {
	cfg      Config
	provider holiday.Provider
	closures []ics.Closure

	// holidayCache memoizes per-year lookups; missing table years are
	// cached as empty after a single warning.
	holidayCache map[int][]holiday.Record
	warnedYears  map[int]bool
}

// New builds a Calendar. closures may be nil.
func New(cfg Config, provider holiday.Provider, closures []ics.Closure) *Calendar {
	return &Calendar{
		cfg:          cfg,
		provider:     provider,
		closures:     closures,
		holidayCache: map[int][]holiday.Record{},
		warnedYears:  map[int]bool{},
	}
}

// Config returns the calendar's working-week configuration.
func (c *Calendar) Config() Config { return c.cfg }

func (c *Calendar) holidaysFor(year int) []holiday.Record {
	if cached, ok := c.holidayCache[year]; ok {
		return cached
	}
	records, err := c.provider.Holidays(c.cfg.Country, year)
	if err != nil {
		if errors.Is(err, holiday.ErrYearNotCovered) {
			// Rule-derived national records are still usable; religious
			// data for this year simply does not exist yet.
			if !c.warnedYears[year] {
				appLog.Warn("holiday data incomplete for year", "country", c.cfg.Country, "year", year)
				c.warnedYears[year] = true
			}
		} else {
			appLog.Error("holiday lookup failed", err, "country", c.cfg.Country, "year", year)
			records = nil
		}
	}
	c.holidayCache[year] = records
	return records
}

// IsHoliday reports whether the date is covered by a holiday span or an
// imported closure.
func (c *Calendar) IsHoliday(d time.Time) bool {
	for _, r := range c.holidaysFor(d.Year()) {
		if r.Covers(d) {
			return true
		}
	}
	// A multi-day span that started in late December can cover early
	// January of the next year.
	for _, r := range c.holidaysFor(d.Year() - 1) {
		if r.Covers(d) {
			return true
		}
	}
	for _, cl := range c.closures {
		if cl.Covers(d) {
			return true
		}
	}
	return false
}

// IsWorkingDay reports whether d is neither weekend nor holiday.
func (c *Calendar) IsWorkingDay(d time.Time) bool {
	if c.cfg.WeekendDays[d.Weekday()] {
		return false
	}
	return !c.IsHoliday(d)
}

// WorkingDaysBetween counts working days in the inclusive range [a, b].
// A reversed range counts the same days.
func (c *Calendar) WorkingDaysBetween(a, b time.Time) int {
	start := dateOf(a)
	end := dateOf(b)
	if end.Before(start) {
		start, end = end, start
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// AddWorkingDays advances from d by n working days, skipping weekends and
// holidays. n <= 0 returns the date unchanged.
func (c *Calendar) AddWorkingDays(d time.Time, n int) time.Time {
	cur := dateOf(d)
	for n > 0 {
		cur = cur.AddDate(0, 0, 1)
		if c.IsWorkingDay(cur) {
			n--
		}
	}
	return cur
}

// SubtractWorkingDays walks backwards by n working days.
func (c *Calendar) SubtractWorkingDays(d time.Time, n int) time.Time {
	cur := dateOf(d)
	for n > 0 {
		cur = cur.AddDate(0, 0, -1)
		if c.IsWorkingDay(cur) {
			n--
		}
	}
	return cur
}

// NextWorkingDay returns d if it is a working day, otherwise the first
// working day after it.
func (c *Calendar) NextWorkingDay(d time.Time) time.Time {
	cur := dateOf(d)
	for !c.IsWorkingDay(cur) {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
