package hijri

import "time"

// hijriEpochJDN is the Julian day number of 1 Muharram 1 AH in the
// tabular calendar.
const hijriEpochJDN = 1948440

// Arithmetic is the closed-form tabular Islamic calendar (the so-called
// Kuwaiti algorithm). Round-trips are exact within the algorithm itself;
// absolute dates may differ by up to one day from the observed calendar.
type Arithmetic struct{}

func (Arithmetic) ToHijri(t time.Time) Date {
	return jdnToHijri(timeToJDN(t))
}

func (a Arithmetic) FromHijri(year, month, day int) (time.Time, error) {
	if err := validateComponents(year, month, day, a.MonthLength(year, month)); err != nil {
		return time.Time{}, err
	}
	return jdnToCivil(hijriToJDN(year, month, day)), nil
}

// MonthLength derives the month length from consecutive month starts.
func (Arithmetic) MonthLength(year, month int) int {
	start := hijriToJDN(year, month, 1)
	var next int
	if month == 12 {
		next = hijriToJDN(year+1, 1, 1)
	} else {
		next = hijriToJDN(year, month+1, 1)
	}
	return next - start
}

func jdnToHijri(jdn int) Date {
	l := jdn - hijriEpochJDN + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29
	m := (24 * l) / 709
	d := l - (709*m)/24
	y := 30*n + j - 30
	return Date{Year: y, Month: m, Day: d}
}

func hijriToJDN(year, month, day int) int {
	return (11*year+3)/30 + 354*year + 30*month - (month-1)/2 + day + hijriEpochJDN - 385
}
