package hijri

import "time"

// Julian day number arithmetic shared by both converters. The formulas
// are the classic Fliegel-Van Flandern integer forms and rely on Go's
// truncating integer division.

// civilToJDN returns the Julian day number for a Gregorian calendar date.
func civilToJDN(year int, month time.Month, day int) int {
	y, m, d := year, int(month), day
	return (1461*(y+4800+(m-14)/12))/4 +
		(367*(m-2-12*((m-14)/12)))/12 -
		(3*((y+4900+(m-14)/12)/100))/4 +
		d - 32075
}

// jdnToCivil returns the Gregorian date (midnight UTC) for a Julian day
// number.
func jdnToCivil(jdn int) time.Time {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	d := l - (2447*j)/80
	l = j / 11
	m := j + 2 - 12*l
	y := 100*(n-49) + i + l
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func timeToJDN(t time.Time) int {
	y, m, d := t.Date()
	return civilToJDN(y, m, d)
}
