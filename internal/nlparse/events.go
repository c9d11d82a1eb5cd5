package nlparse

import "time"

// lunarEvent is a recurring Hijri-calendar event the parser can anchor
// expressions to. span is in days, matching the holiday tables.
type lunarEvent struct {
	month int
	day   int
	span  int
}

var lunarEvents = map[string]lunarEvent{
	"رمضان":             {9, 1, 1},
	"شهر رمضان":         {9, 1, 1},
	"عيد الفطر":         {10, 1, 3},
	"العيد الصغير":      {10, 1, 3},
	"عيد الاضحي":        {12, 10, 3},
	"العيد الكبير":      {12, 10, 3},
	"يوم عرفه":          {12, 9, 1},
	"عرفه":              {12, 9, 1},
	"راس السنه الهجريه": {1, 1, 1},
	"عاشوراء":           {1, 10, 1},
	"المولد النبوي":     {3, 12, 1},
	"المولد":            {3, 12, 1},
}

// resolveEventRelative handles religious-event anchors: a bare event name
// resolves to its next occurrence on or after the reference date, "بعد"
// to the first day after the event's span, and "قبل" to the day before
// it. "العيد" alone means whichever Eid comes next.
func resolveEventRelative(p *Parser, tokens []string, ref time.Time) (time.Time, bool) {
	rel := 0
	switch tokens[0] {
	case "بعد":
		rel = 1
		tokens = tokens[1:]
	case "قبل":
		rel = -1
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return time.Time{}, false
	}

	phrase := join(tokens)

	var ev lunarEvent
	var start time.Time
	var found bool
	if phrase == "العيد" {
		ev, start, found = p.nextEid(ref)
	} else {
		e, ok := lunarEvents[phrase]
		if !ok {
			return time.Time{}, false
		}
		start, found = p.nextEventDate(ref, e)
		ev = e
	}
	if !found {
		return time.Time{}, false
	}

	switch rel {
	case 1:
		return start.AddDate(0, 0, ev.span), true
	case -1:
		return start.AddDate(0, 0, -1), true
	default:
		return start, true
	}
}

// nextEventDate finds the event's next civil occurrence on or after ref.
// Years whose conversion fails are skipped rather than surfaced.
func (p *Parser) nextEventDate(ref time.Time, ev lunarEvent) (time.Time, bool) {
	day := dateOf(ref)
	hijriYear := p.conv.ToHijri(day).Year

	for y := hijriYear; y <= hijriYear+2; y++ {
		civil, err := p.conv.FromHijri(y, ev.month, ev.day)
		if err != nil {
			continue
		}
		if !civil.Before(day) {
			return civil, true
		}
	}
	return time.Time{}, false
}

// nextEid returns whichever of Eid al-Fitr and Eid al-Adha occurs first
// on or after ref.
func (p *Parser) nextEid(ref time.Time) (lunarEvent, time.Time, bool) {
	fitr := lunarEvents["عيد الفطر"]
	adha := lunarEvents["عيد الاضحي"]

	fitrDate, fitrOK := p.nextEventDate(ref, fitr)
	adhaDate, adhaOK := p.nextEventDate(ref, adha)

	switch {
	case fitrOK && adhaOK:
		if fitrDate.Before(adhaDate) {
			return fitr, fitrDate, true
		}
		return adha, adhaDate, true
	case fitrOK:
		return fitr, fitrDate, true
	case adhaOK:
		return adha, adhaDate, true
	}
	return lunarEvent{}, time.Time{}, false
}
