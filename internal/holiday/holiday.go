// Package holiday provides per-country holiday records. National holidays
// fall on the same civil date every year and are rule-derived; religious
// holidays follow the Hijri calendar and come from a precomputed per-year
// table, since the approximate lunar conversion is not reliable enough to
// derive observed holiday dates.
package holiday

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Kind distinguishes rule-derived from lunar-table holidays.
type Kind string

const (
	KindNational  Kind = "national"
	KindReligious Kind = "religious"
)

// Record is one holiday observation. Multi-day holidays cover the
// half-open span [Date, Date+Days).
type Record struct {
	Date   time.Time `json:"date"`
	Name   string    `json:"name"`
	NameAr string    `json:"name_ar"`
	Kind   Kind      `json:"kind"`
	Days   int       `json:"days"`
}

// Covers reports whether the holiday span includes the given date.
func (r Record) Covers(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, r.Days)
	return !day.Before(start) && day.Before(end)
}

// ErrYearNotCovered marks a year outside the precomputed religious table.
// Holidays still returns the rule-derived national records alongside it,
// so callers can distinguish "no data" from "no holidays".
var ErrYearNotCovered = errors.New("holiday: religious table does not cover year")

// ErrUnknownCountry marks an unsupported country code.
var ErrUnknownCountry = errors.New("holiday: unknown country")

// Provider is the versioned holiday data source.
type Provider interface {
	// Holidays returns every holiday for (country, year), sorted by date.
	Holidays(country string, year int) ([]Record, error)
	// Covered reports whether the religious table includes the year.
	Covered(year int) bool
}

// StaticProvider serves the tables embedded in this package.
type StaticProvider struct{}

// NewStaticProvider returns the embedded-table provider.
func NewStaticProvider() *StaticProvider { return &StaticProvider{} }

func (p *StaticProvider) Covered(year int) bool {
	_, ok := religiousTable[year]
	return ok
}

func (p *StaticProvider) Holidays(country string, year int) ([]Record, error) {
	rules, ok := nationalRules[country]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}

	out := make([]Record, 0, len(rules)+8)
	for _, rule := range rules {
		out = append(out, Record{
			Date:   time.Date(year, rule.month, rule.day, 0, 0, 0, 0, time.UTC),
			Name:   rule.name,
			NameAr: rule.nameAr,
			Kind:   KindNational,
			Days:   rule.days,
		})
	}

	table, ok := religiousTable[year]
	if !ok {
		sortRecords(out)
		return out, fmt.Errorf("%w: %d", ErrYearNotCovered, year)
	}
	observed := religiousObserved[country]
	for _, entry := range table {
		if !observed[entry.key] {
			continue
		}
		out = append(out, Record{
			Date:   entry.date,
			Name:   entry.name,
			NameAr: entry.nameAr,
			Kind:   KindReligious,
			Days:   entry.days,
		})
	}

	sortRecords(out)
	return out, nil
}

func sortRecords(rs []Record) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Date.Before(rs[j].Date) })
}
