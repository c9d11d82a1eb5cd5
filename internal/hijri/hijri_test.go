package hijri

import (
	"testing"
	"time"
)

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUmmAlQuraKnownDates(t *testing.T) {
	conv := NewUmmAlQura()

	cases := []struct {
		civil time.Time
		want  Date
	}{
		{civil(2022, time.July, 30), Date{1444, 1, 1}},
		{civil(2023, time.March, 23), Date{1444, 9, 1}},
		{civil(2023, time.April, 21), Date{1444, 10, 1}},
		{civil(2023, time.July, 19), Date{1445, 1, 1}},
		{civil(2024, time.March, 11), Date{1445, 9, 1}},
		{civil(2024, time.April, 10), Date{1445, 10, 1}},
		{civil(2024, time.July, 7), Date{1446, 1, 1}},
		{civil(2025, time.March, 1), Date{1446, 9, 1}},
		{civil(2024, time.November, 6), Date{1446, 5, 4}},
	}
	for _, tc := range cases {
		got := conv.ToHijri(tc.civil)
		if got != tc.want {
			t.Errorf("ToHijri(%s) = %v, want %v", tc.civil.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestUmmAlQuraFromHijri(t *testing.T) {
	conv := NewUmmAlQura()

	got, err := conv.FromHijri(1446, 9, 1)
	if err != nil {
		t.Fatalf("FromHijri: %v", err)
	}
	if want := civil(2025, time.March, 1); !got.Equal(want) {
		t.Errorf("FromHijri(1446, 9, 1) = %s, want %s", got, want)
	}

	if _, err := conv.FromHijri(1445, 13, 1); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := conv.FromHijri(1444, 9, 30); err == nil {
		t.Error("expected error for day 30 of a 29-day month")
	}
}

func TestUmmAlQuraRoundTripInsideWindow(t *testing.T) {
	conv := NewUmmAlQura()

	for d := civil(2022, time.August, 1); d.Before(civil(2025, time.June, 1)); d = d.AddDate(0, 0, 1) {
		h := conv.ToHijri(d)
		back, err := conv.FromHijri(h.Year, h.Month, h.Day)
		if err != nil {
			t.Fatalf("FromHijri(%v): %v", h, err)
		}
		if !back.Equal(d) {
			t.Fatalf("round trip %s -> %v -> %s", d.Format("2006-01-02"), h, back.Format("2006-01-02"))
		}
	}
}

func TestUmmAlQuraFallsBackOutsideWindow(t *testing.T) {
	conv := NewUmmAlQura()
	arith := Arithmetic{}

	d := civil(2030, time.May, 15)
	if got, want := conv.ToHijri(d), arith.ToHijri(d); got != want {
		t.Errorf("outside window: got %v, want arithmetic result %v", got, want)
	}
	if conv.Covers(1450) {
		t.Error("Covers(1450) = true, want false")
	}
	if !conv.Covers(1445) {
		t.Error("Covers(1445) = false, want true")
	}
}

func TestArithmeticRoundTripExact(t *testing.T) {
	conv := Arithmetic{}

	for d := civil(2000, time.January, 1); d.Before(civil(2050, time.January, 1)); d = d.AddDate(0, 0, 17) {
		h := conv.ToHijri(d)
		back, err := conv.FromHijri(h.Year, h.Month, h.Day)
		if err != nil {
			t.Fatalf("FromHijri(%v): %v", h, err)
		}
		if !back.Equal(d) {
			t.Fatalf("round trip %s -> %v -> %s", d.Format("2006-01-02"), h, back.Format("2006-01-02"))
		}
	}
}

func TestArithmeticDriftWithinOneDay(t *testing.T) {
	table := NewUmmAlQura()
	arith := Arithmetic{}

	// Across the table window the closed-form calendar must stay within
	// one day of the observed one.
	for y := 1444; y <= 1446; y++ {
		for m := 1; m <= 12; m++ {
			observed, err := table.FromHijri(y, m, 1)
			if err != nil {
				t.Fatalf("table FromHijri(%d, %d, 1): %v", y, m, err)
			}
			computed, err := arith.FromHijri(y, m, 1)
			if err != nil {
				t.Fatalf("arith FromHijri(%d, %d, 1): %v", y, m, err)
			}
			drift := observed.Sub(computed).Hours() / 24
			if drift < -1 || drift > 1 {
				t.Errorf("month %d/%d: drift %.0f days (observed %s, computed %s)",
					m, y, drift, observed.Format("2006-01-02"), computed.Format("2006-01-02"))
			}
		}
	}
}

func TestMonthLength(t *testing.T) {
	conv := NewUmmAlQura()

	if got := conv.MonthLength(1444, 9); got != 29 {
		t.Errorf("MonthLength(1444, 9) = %d, want 29", got)
	}
	if got := conv.MonthLength(1445, 9); got != 30 {
		t.Errorf("MonthLength(1445, 9) = %d, want 30", got)
	}

	arith := Arithmetic{}
	for m := 1; m <= 12; m++ {
		n := arith.MonthLength(1445, m)
		if n != 29 && n != 30 {
			t.Errorf("arithmetic MonthLength(1445, %d) = %d", m, n)
		}
	}
}

func TestMonthNames(t *testing.T) {
	d := Date{Year: 1446, Month: 9, Day: 1}
	if got := d.MonthName(); got != "رمضان" {
		t.Errorf("MonthName = %q", got)
	}
	if got := d.MonthNameEn(); got != "Ramadan" {
		t.Errorf("MonthNameEn = %q", got)
	}
	if got := (Date{Month: 0}).MonthName(); got != "" {
		t.Errorf("invalid month name = %q", got)
	}
}
