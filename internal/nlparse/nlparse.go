// Package nlparse resolves Arabic natural-language temporal expressions
// into concrete dates or ranges, always relative to an explicit reference
// date. Parsing is pure: the same (text, reference) pair always yields
// the same result, and "no match" is a normal outcome signaled by a false
// second return, never an error.
//
// Resolution runs an ordered chain of sub-resolvers; the first match
// wins. Ambiguous phrases matching two resolvers therefore always take
// the earlier resolver's interpretation. That ordering is a product
// decision and must not be reordered.
package nlparse

import (
	"time"

	"waqt/internal/hijri"
	"waqt/internal/period"
)

// Range is an inclusive resolved date range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Parser resolves temporal expressions. Construct with New.
type Parser struct {
	conv      hijri.Converter
	weekStart time.Weekday
	chain     []resolver
}

// resolver tries one class of expressions against normalized tokens.
type resolver func(p *Parser, tokens []string, ref time.Time) (time.Time, bool)

// New builds a Parser. conv is used for lunar-event-relative expressions;
// weekStart controls week anchors.
func New(conv hijri.Converter, weekStart time.Weekday) *Parser {
	p := &Parser{conv: conv, weekStart: weekStart}
	// Priority order is part of the contract; see the package comment.
	p.chain = []resolver{
		resolveLiteralDay,
		resolvePeriodAnchor,
		resolveRelativePeriod,
		resolveQuantifiedOffset,
		resolveWeekday,
		resolveEventRelative,
	}
	return p
}

// Parse resolves text to a single date. The boolean is false when no
// resolver matched.
func (p *Parser) Parse(text string, ref time.Time) (time.Time, bool) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return time.Time{}, false
	}
	for _, r := range p.chain {
		if t, ok := r(p, tokens, ref); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseRange resolves text to an inclusive range. Whole-period
// expressions ("this month") map to the full period; anything else that
// Parse can resolve degrades to a one-day range.
func (p *Parser) ParseRange(text string, ref time.Time) (Range, bool) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Range{}, false
	}

	if r, ok := p.resolveWholePeriod(tokens, ref); ok {
		return r, true
	}

	if t, ok := p.Parse(text, ref); ok {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return Range{Start: day, End: day}, true
	}
	return Range{}, false
}

func (p *Parser) resolveWholePeriod(tokens []string, ref time.Time) (Range, bool) {
	phrase := join(tokens)

	var pr period.Range
	switch phrase {
	case "هذا الشهر", "الشهر الحالي":
		pr = period.ThisMonth(ref)
	case "هذا الاسبوع", "الاسبوع الحالي":
		pr = period.ThisWeek(ref, p.weekStart)
	case "هذه السنه", "هذا العام", "السنه الحاليه":
		pr = period.ThisYear(ref)
	default:
		return Range{}, false
	}
	return Range{Start: pr.Start, End: pr.End}, true
}

func tokenize(text string) []string {
	norm := normalize(text)
	if norm == "" {
		return nil
	}
	tokens := []string{}
	start := -1
	for i, r := range norm {
		if r == ' ' {
			if start >= 0 {
				tokens = append(tokens, norm[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, norm[start:])
	}
	return tokens
}

func join(tokens []string) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
