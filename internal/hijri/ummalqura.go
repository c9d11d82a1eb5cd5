package hijri

import "time"

// ummStartYear is the first Hijri year covered by the embedded
// Umm al-Qura month-length table.
const ummStartYear = 1444

// ummStartJDN is the Julian day number of 1 Muharram 1444 (30 July 2022).
const ummStartJDN = 2459791

// ummMonthLengths holds the observed month lengths per covered Hijri
// year. Refreshing this table when new Umm al-Qura data is published is a
// known maintenance task; dates outside the window use the arithmetic
// fallback.
var ummMonthLengths = [][12]int{
	{30, 29, 30, 29, 30, 29, 30, 29, 29, 29, 30, 30}, // 1444
	{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 29, 30}, // 1445
	{30, 29, 30, 30, 29, 30, 29, 30, 29, 29, 30, 29}, // 1446
}

// UmmAlQura converts using the embedded table where it applies and the
// Arithmetic converter everywhere else. Inside the table window the
// conversion matches the published Umm al-Qura calendar and round-trips
// exactly.
type UmmAlQura struct {
	fallback Arithmetic

	// yearStartJDN[i] is the JDN of 1 Muharram of ummStartYear+i; one
	// extra entry marks the end of the window.
	yearStartJDN []int
}

// NewUmmAlQura builds the table-backed converter.
func NewUmmAlQura() *UmmAlQura {
	starts := make([]int, len(ummMonthLengths)+1)
	starts[0] = ummStartJDN
	for i, months := range ummMonthLengths {
		total := 0
		for _, n := range months {
			total += n
		}
		starts[i+1] = starts[i] + total
	}
	return &UmmAlQura{yearStartJDN: starts}
}

// Covers reports whether the given Hijri year is inside the table window.
func (u *UmmAlQura) Covers(year int) bool {
	return year >= ummStartYear && year < ummStartYear+len(ummMonthLengths)
}

func (u *UmmAlQura) ToHijri(t time.Time) Date {
	jdn := timeToJDN(t)
	if jdn < u.yearStartJDN[0] || jdn >= u.yearStartJDN[len(u.yearStartJDN)-1] {
		return u.fallback.ToHijri(t)
	}

	year := ummStartYear
	for year-ummStartYear+1 < len(u.yearStartJDN) && jdn >= u.yearStartJDN[year-ummStartYear+1] {
		year++
	}

	rem := jdn - u.yearStartJDN[year-ummStartYear]
	months := ummMonthLengths[year-ummStartYear]
	month := 1
	for month <= 12 && rem >= months[month-1] {
		rem -= months[month-1]
		month++
	}
	return Date{Year: year, Month: month, Day: rem + 1}
}

func (u *UmmAlQura) FromHijri(year, month, day int) (time.Time, error) {
	if !u.Covers(year) {
		return u.fallback.FromHijri(year, month, day)
	}
	if err := validateComponents(year, month, day, u.MonthLength(year, month)); err != nil {
		return time.Time{}, err
	}

	jdn := u.yearStartJDN[year-ummStartYear]
	months := ummMonthLengths[year-ummStartYear]
	for m := 1; m < month; m++ {
		jdn += months[m-1]
	}
	return jdnToCivil(jdn + day - 1), nil
}

func (u *UmmAlQura) MonthLength(year, month int) int {
	if !u.Covers(year) || month < 1 || month > 12 {
		return u.fallback.MonthLength(year, month)
	}
	return ummMonthLengths[year-ummStartYear][month-1]
}
