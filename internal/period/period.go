// Package period computes canonical business-period date ranges. Every
// function is a pure function of the reference date and returns an
// inclusive (start, end) pair at date granularity, UTC midnight.
package period

import "time"

// Range is an inclusive span of dates.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of days the range covers.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether the date falls inside the range.
func (r Range) Contains(d time.Time) bool {
	day := dateOf(d)
	return !day.Before(r.Start) && !day.After(r.End)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ThisMonth returns the calendar month containing ref.
func ThisMonth(ref time.Time) Range {
	y, m, _ := ref.Date()
	start := date(y, m, 1)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// PrevMonth returns the month before the one containing ref, rolling into
// the prior year from January.
func PrevMonth(ref time.Time) Range {
	y, m, _ := ref.Date()
	start := date(y, m, 1).AddDate(0, -1, 0)
	return Range{Start: start, End: start.AddDate(0, 1, -1)}
}

// ThisQuarter returns the calendar quarter containing ref.
func ThisQuarter(ref time.Time) Range {
	y, m, _ := ref.Date()
	qStart := time.Month((int(m)-1)/3*3 + 1)
	start := date(y, qStart, 1)
	return Range{Start: start, End: start.AddDate(0, 3, -1)}
}

// PrevQuarter returns the quarter before the one containing ref.
func PrevQuarter(ref time.Time) Range {
	cur := ThisQuarter(ref)
	start := cur.Start.AddDate(0, -3, 0)
	return Range{Start: start, End: start.AddDate(0, 3, -1)}
}

// ThisYear returns the calendar year containing ref.
func ThisYear(ref time.Time) Range {
	y := ref.Year()
	return Range{Start: date(y, time.January, 1), End: date(y, time.December, 31)}
}

// PrevYear returns the calendar year before ref's.
func PrevYear(ref time.Time) Range {
	y := ref.Year() - 1
	return Range{Start: date(y, time.January, 1), End: date(y, time.December, 31)}
}

// ThisWeek returns the week containing ref, beginning on weekStart.
func ThisWeek(ref time.Time, weekStart time.Weekday) Range {
	day := dateOf(ref)
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	start := day.AddDate(0, 0, -back)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

// PrevWeek returns the week before the one containing ref.
func PrevWeek(ref time.Time, weekStart time.Weekday) Range {
	cur := ThisWeek(ref, weekStart)
	return Range{Start: cur.Start.AddDate(0, 0, -7), End: cur.Start.AddDate(0, 0, -1)}
}

// YearToDate returns January 1st of ref's year through ref.
func YearToDate(ref time.Time) Range {
	return Range{Start: date(ref.Year(), time.January, 1), End: dateOf(ref)}
}

// LastNDays returns the n-day window ending at ref, inclusive. n < 1 is
// treated as 1.
func LastNDays(ref time.Time, n int) Range {
	if n < 1 {
		n = 1
	}
	end := dateOf(ref)
	return Range{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// LastNMonths returns the n full calendar months before the month
// containing ref. n < 1 is treated as 1.
func LastNMonths(ref time.Time, n int) Range {
	if n < 1 {
		n = 1
	}
	y, m, _ := ref.Date()
	monthStart := date(y, m, 1)
	return Range{Start: monthStart.AddDate(0, -n, 0), End: monthStart.AddDate(0, 0, -1)}
}

// FiscalQuarter returns the fiscal quarter containing ref for a fiscal
// year beginning in fiscalStartMonth. With fiscalStartMonth 1 it matches
// ThisQuarter.
func FiscalQuarter(ref time.Time, fiscalStartMonth time.Month) Range {
	if fiscalStartMonth < time.January || fiscalStartMonth > time.December {
		fiscalStartMonth = time.January
	}
	y, m, _ := ref.Date()
	// Months elapsed since the fiscal year began.
	offset := (int(m) - int(fiscalStartMonth) + 12) % 12
	fyStartYear := y
	if int(m) < int(fiscalStartMonth) {
		fyStartYear--
	}
	qIndex := offset / 3
	start := date(fyStartYear, fiscalStartMonth, 1).AddDate(0, qIndex*3, 0)
	return Range{Start: start, End: start.AddDate(0, 3, -1)}
}

// FiscalYear returns the fiscal year containing ref.
func FiscalYear(ref time.Time, fiscalStartMonth time.Month) Range {
	if fiscalStartMonth < time.January || fiscalStartMonth > time.December {
		fiscalStartMonth = time.January
	}
	y, m, _ := ref.Date()
	fyStartYear := y
	if int(m) < int(fiscalStartMonth) {
		fyStartYear--
	}
	start := date(fyStartYear, fiscalStartMonth, 1)
	return Range{Start: start, End: start.AddDate(1, 0, -1)}
}
