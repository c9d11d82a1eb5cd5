// Package hijri converts between civil (Gregorian) and Hijri dates.
//
// Two converters implement the same contract and are selected at
// construction time:
//
//   - UmmAlQura: backed by a precomputed month-length table covering a
//     window of Hijri years; exact and round-trip stable inside the
//     window, delegating to the arithmetic converter outside it.
//   - Arithmetic: the tabular (Kuwaiti) Julian-day algorithm; fully
//     closed-form but may drift up to one day from the observed calendar
//     near month boundaries. That drift is an accepted trade-off, not a
//     defect.
package hijri

import (
	"fmt"
	"time"
)

// Date is a Hijri calendar date. Month is 1 (Muharram) through 12
// (Dhu al-Hijjah).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

var monthNames = [12]string{
	"محرم",
	"صفر",
	"ربيع الأول",
	"ربيع الآخر",
	"جمادى الأولى",
	"جمادى الآخرة",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذو القعدة",
	"ذو الحجة",
}

var monthNamesEn = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

// MonthName returns the Arabic month name, or "" for an invalid month.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNames[d.Month-1]
}

// MonthNameEn returns the transliterated month name.
func (d Date) MonthNameEn() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNamesEn[d.Month-1]
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d AH", d.Year, d.Month, d.Day)
}

// Converter is the single conversion contract both algorithms expose.
type Converter interface {
	// ToHijri converts a civil date (time-of-day ignored) to Hijri.
	ToHijri(t time.Time) Date
	// FromHijri converts Hijri components to civil midnight UTC. It fails
	// only on invalid components, never on in-range dates.
	FromHijri(year, month, day int) (time.Time, error)
	// MonthLength returns the number of days (29 or 30) in the given
	// Hijri month.
	MonthLength(year, month int) int
}

// Algorithm selects a Converter implementation.
type Algorithm int

const (
	// AlgorithmUmmAlQura prefers the precomputed table, falling back to
	// arithmetic outside its coverage window.
	AlgorithmUmmAlQura Algorithm = iota
	// AlgorithmArithmetic always uses the closed-form tabular calendar.
	AlgorithmArithmetic
)

// New constructs the requested converter.
func New(alg Algorithm) Converter {
	switch alg {
	case AlgorithmArithmetic:
		return Arithmetic{}
	default:
		return NewUmmAlQura()
	}
}

func validateComponents(year, month, day, monthLen int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("hijri: month %d out of range", month)
	}
	if day < 1 || day > monthLen {
		return fmt.Errorf("hijri: day %d out of range for month %d/%d", day, month, year)
	}
	return nil
}
