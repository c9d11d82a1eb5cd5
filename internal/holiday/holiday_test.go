package holiday

import (
	"errors"
	"testing"
	"time"
)

func TestHolidaysSA2024(t *testing.T) {
	p := NewStaticProvider()

	records, err := p.Holidays("SA", 2024)
	if err != nil {
		t.Fatalf("Holidays: %v", err)
	}

	byName := map[string]Record{}
	for _, r := range records {
		byName[r.Name] = r
	}

	national, ok := byName["National Day"]
	if !ok {
		t.Fatal("missing National Day")
	}
	if want := d(2024, time.September, 23); !national.Date.Equal(want) {
		t.Errorf("National Day = %s, want %s", national.Date, want)
	}
	if national.Kind != KindNational {
		t.Errorf("National Day kind = %s", national.Kind)
	}

	fitr, ok := byName["Eid al-Fitr"]
	if !ok {
		t.Fatal("missing Eid al-Fitr")
	}
	if want := d(2024, time.April, 10); !fitr.Date.Equal(want) {
		t.Errorf("Eid al-Fitr = %s, want %s", fitr.Date, want)
	}
	if fitr.Days != 3 {
		t.Errorf("Eid al-Fitr days = %d, want 3", fitr.Days)
	}
	if fitr.NameAr != "عيد الفطر" {
		t.Errorf("Eid al-Fitr Arabic name = %q", fitr.NameAr)
	}

	// SA does not observe Mawlid as a public holiday.
	if _, ok := byName["Prophet's Birthday"]; ok {
		t.Error("SA should not include Mawlid")
	}
}

func TestRecordCovers(t *testing.T) {
	r := Record{Date: d(2024, time.April, 10), Days: 3}

	cases := []struct {
		date time.Time
		want bool
	}{
		{d(2024, time.April, 9), false},
		{d(2024, time.April, 10), true},
		{d(2024, time.April, 12), true},
		{d(2024, time.April, 13), false},
	}
	for _, tc := range cases {
		if got := r.Covers(tc.date); got != tc.want {
			t.Errorf("Covers(%s) = %v, want %v", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestHolidaysSorted(t *testing.T) {
	p := NewStaticProvider()
	records, err := p.Holidays("EG", 2025)
	if err != nil {
		t.Fatalf("Holidays: %v", err)
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			t.Fatalf("records not sorted at %d: %s before %s",
				i, records[i].Date, records[i-1].Date)
		}
	}
}

func TestYearNotCovered(t *testing.T) {
	p := NewStaticProvider()

	records, err := p.Holidays("SA", 2030)
	if !errors.Is(err, ErrYearNotCovered) {
		t.Fatalf("err = %v, want ErrYearNotCovered", err)
	}
	// National records are still rule-derivable.
	if len(records) == 0 {
		t.Fatal("expected national records for uncovered year")
	}
	for _, r := range records {
		if r.Kind == KindReligious {
			t.Errorf("unexpected religious record %q in uncovered year", r.Name)
		}
	}

	if p.Covered(2030) {
		t.Error("Covered(2030) = true")
	}
	if !p.Covered(2024) {
		t.Error("Covered(2024) = false")
	}
}

func TestUnknownCountry(t *testing.T) {
	p := NewStaticProvider()
	if _, err := p.Holidays("XX", 2024); !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("err = %v, want ErrUnknownCountry", err)
	}
}
