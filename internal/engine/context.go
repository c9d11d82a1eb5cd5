package engine

import (
	"time"

	"waqt/internal/hijri"
	"waqt/internal/period"
)

// TimeContext is the composite snapshot of one instant: civil fields,
// the Hijri representation, and the business-period coordinates.
type TimeContext struct {
	Civil   time.Time `json:"civil"`
	Year    int       `json:"year"`
	Month   int       `json:"month"`
	Day     int       `json:"day"`
	Weekday string    `json:"weekday"`

	Hijri          hijri.Date `json:"hijri"`
	HijriMonthName string     `json:"hijri_month_name"`

	ISOYear int `json:"iso_year"`
	ISOWeek int `json:"iso_week"`
	Quarter int `json:"quarter"`

	FiscalYear    int `json:"fiscal_year"`
	FiscalQuarter int `json:"fiscal_quarter"`

	WorkingDay bool `json:"working_day"`
}

// Context assembles the snapshot for t.
func (e *Engine) Context(t time.Time) TimeContext {
	y, m, d := t.Date()
	isoYear, isoWeek := t.ISOWeek()
	h := e.Converter.ToHijri(t)

	fiscalStart := time.Month(e.cfg.FiscalStartMonth)
	fy := period.FiscalYear(t, fiscalStart)
	offset := (int(m) - int(fiscalStart) + 12) % 12

	return TimeContext{
		Civil:          t,
		Year:           y,
		Month:          int(m),
		Day:            d,
		Weekday:        t.Weekday().String(),
		Hijri:          h,
		HijriMonthName: h.MonthName(),
		ISOYear:        isoYear,
		ISOWeek:        isoWeek,
		Quarter:        (int(m)-1)/3 + 1,
		FiscalYear:     fy.Start.Year(),
		FiscalQuarter:  offset/3 + 1,
		WorkingDay:     e.Calendar.IsWorkingDay(t),
	}
}

// ContextNow is Context at the engine clock.
func (e *Engine) ContextNow() TimeContext {
	return e.Context(e.Now())
}
