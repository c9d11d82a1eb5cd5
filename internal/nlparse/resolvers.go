package nlparse

import "time"

// resolveLiteralDay handles today/yesterday/tomorrow words, including the
// colloquial forms. Day offsets preserve the reference clock time.
func resolveLiteralDay(_ *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	switch join(tokens) {
	case "اليوم":
		return ref, true
	case "امس", "البارحه", "مبارح", "امبارح":
		return ref.AddDate(0, 0, -1), true
	case "بكره", "بكرا", "غدا", "غد":
		return ref.AddDate(0, 0, 1), true
	case "بعد بكره", "بعد غد":
		return ref.AddDate(0, 0, 2), true
	case "اول امس", "اول مبارح":
		return ref.AddDate(0, 0, -2), true
	}
	return time.Time{}, false
}

// resolvePeriodAnchor handles start/end of month, week, and year.
func resolvePeriodAnchor(p *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	if len(tokens) != 2 {
		return time.Time{}, false
	}

	anchor := tokens[0]
	var atStart bool
	switch anchor {
	case "بدايه", "اول":
		atStart = true
	case "نهايه", "اخر":
		atStart = false
	default:
		return time.Time{}, false
	}

	day := dateOf(ref)
	switch tokens[1] {
	case "الشهر":
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		if atStart {
			return first, true
		}
		return first.AddDate(0, 1, -1), true
	case "الاسبوع":
		back := (int(day.Weekday()) - int(p.weekStart) + 7) % 7
		start := day.AddDate(0, 0, -back)
		if atStart {
			return start, true
		}
		return start.AddDate(0, 0, 6), true
	case "السنه", "العام":
		if atStart {
			return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

var nextQualifiers = map[string]bool{
	"القادم":  true,
	"القادمه": true,
	"الجاي":   true,
	"الجايه":  true,
	"المقبل":  true,
	"المقبله": true,
}

var prevQualifiers = map[string]bool{
	"الماضي":  true,
	"الماضيه": true,
	"الفائت":  true,
	"الفائته": true,
}

// resolveRelativePeriod handles next/previous week, month, and year.
func resolveRelativePeriod(_ *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	if len(tokens) != 2 {
		return time.Time{}, false
	}

	sign := 0
	switch {
	case nextQualifiers[tokens[1]]:
		sign = 1
	case prevQualifiers[tokens[1]]:
		sign = -1
	default:
		return time.Time{}, false
	}

	switch tokens[0] {
	case "الاسبوع":
		return ref.AddDate(0, 0, sign*7), true
	case "الشهر":
		return ref.AddDate(0, sign, 0), true
	case "السنه", "العام":
		return ref.AddDate(sign, 0, 0), true
	}
	return time.Time{}, false
}

type offsetUnit int

const (
	unitDay offsetUnit = iota
	unitWeek
	unitMonth
	unitYear
)

// unitWords maps singular and plural unit forms. Dual forms carry an
// implicit count of two and live in dualUnits.
var unitWords = map[string]offsetUnit{
	"يوم":    unitDay,
	"ايام":   unitDay,
	"اسبوع":  unitWeek,
	"اسابيع": unitWeek,
	"شهر":    unitMonth,
	"اشهر":   unitMonth,
	"شهور":   unitMonth,
	"سنه":    unitYear,
	"سنوات":  unitYear,
	"سنين":   unitYear,
	"عام":    unitYear,
	"اعوام":  unitYear,
}

var dualUnits = map[string]offsetUnit{
	"يومين":   unitDay,
	"اسبوعين": unitWeek,
	"شهرين":   unitMonth,
	"سنتين":   unitYear,
	"عامين":   unitYear,
}

// resolveQuantifiedOffset handles "after/before N days/weeks/months/
// years". N may be an ASCII digit run (Arabic-Indic digits were
// normalized), a number word, a dual form, or absent (meaning one).
func resolveQuantifiedOffset(_ *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	if len(tokens) < 2 || len(tokens) > 3 {
		return time.Time{}, false
	}

	sign := 0
	switch tokens[0] {
	case "بعد":
		sign = 1
	case "قبل":
		sign = -1
	default:
		return time.Time{}, false
	}

	var n int
	var unit offsetUnit
	rest := tokens[1:]

	switch len(rest) {
	case 1:
		if u, ok := dualUnits[rest[0]]; ok {
			n, unit = 2, u
		} else if u, ok := unitWords[rest[0]]; ok {
			n, unit = 1, u
		} else {
			return time.Time{}, false
		}
	case 2:
		count, ok := parseCount(rest[0])
		if !ok {
			return time.Time{}, false
		}
		u, ok := unitWords[rest[1]]
		if !ok {
			return time.Time{}, false
		}
		n, unit = count, u
	}

	switch unit {
	case unitDay:
		return ref.AddDate(0, 0, sign*n), true
	case unitWeek:
		return ref.AddDate(0, 0, sign*n*7), true
	case unitMonth:
		return ref.AddDate(0, sign*n, 0), true
	default:
		return ref.AddDate(sign*n, 0, 0), true
	}
}

// weekdayNames lists both definite and bare forms; phrases like
// "اول جمعه" drop the article.
var weekdayNames = map[string]time.Weekday{
	"الاحد":    time.Sunday,
	"احد":      time.Sunday,
	"الاثنين":  time.Monday,
	"اثنين":    time.Monday,
	"الثلاثاء": time.Tuesday,
	"الثلاثا":  time.Tuesday,
	"ثلاثاء":   time.Tuesday,
	"الاربعاء": time.Wednesday,
	"اربعاء":   time.Wednesday,
	"الخميس":   time.Thursday,
	"خميس":     time.Thursday,
	"الجمعه":   time.Friday,
	"جمعه":     time.Friday,
	"السبت":    time.Saturday,
	"سبت":      time.Saturday,
}

// resolveWeekday handles weekday names with qualifiers: bare or "next"
// takes the next occurrence strictly after the reference, "previous" the
// last one strictly before it, and first/last pin the occurrence inside
// the reference month. Trailing "في الشهر" is accepted and ignored.
func resolveWeekday(_ *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	// Strip an optional "في الشهر" suffix.
	if n := len(tokens); n >= 2 && tokens[n-2] == "في" && tokens[n-1] == "الشهر" {
		tokens = tokens[:n-2]
	}

	day := dateOf(ref)

	switch len(tokens) {
	case 1:
		wd, ok := weekdayNames[tokens[0]]
		if !ok {
			return time.Time{}, false
		}
		return nextWeekday(day, wd), true
	case 2:
		// "<weekday> <qualifier>" or "<first/last> <weekday>".
		if wd, ok := weekdayNames[tokens[0]]; ok {
			switch {
			case nextQualifiers[tokens[1]]:
				return nextWeekday(day, wd), true
			case prevQualifiers[tokens[1]]:
				return prevWeekday(day, wd), true
			}
			return time.Time{}, false
		}
		wd, ok := weekdayNames[tokens[1]]
		if !ok {
			return time.Time{}, false
		}
		switch tokens[0] {
		case "اول":
			return firstWeekdayOfMonth(day, wd), true
		case "اخر":
			return lastWeekdayOfMonth(day, wd), true
		}
	}
	return time.Time{}, false
}

func nextWeekday(day time.Time, wd time.Weekday) time.Time {
	ahead := (int(wd) - int(day.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return day.AddDate(0, 0, ahead)
}

func prevWeekday(day time.Time, wd time.Weekday) time.Time {
	back := (int(day.Weekday()) - int(wd) + 7) % 7
	if back == 0 {
		back = 7
	}
	return day.AddDate(0, 0, -back)
}

func firstWeekdayOfMonth(day time.Time, wd time.Weekday) time.Time {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	ahead := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, ahead)
}

func lastWeekdayOfMonth(day time.Time, wd time.Weekday) time.Time {
	last := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	back := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -back)
}
