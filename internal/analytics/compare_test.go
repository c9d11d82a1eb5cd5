package analytics

import (
	"math"
	"testing"
)

func TestPeriodOverPeriod(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		want     Comparison
	}{
		{"growth", 110, 100, Comparison{Difference: 10, Percentage: 10, Trend: TrendUp}},
		{"decline", 90, 100, Comparison{Difference: -10, Percentage: -10, Trend: TrendDown}},
		{"flat", 100, 100, Comparison{Difference: 0, Percentage: 0, Trend: TrendFlat}},
		{"zero previous", 50, 0, Comparison{Difference: 50, Percentage: 0, Trend: TrendUp}},
		{"both zero", 0, 0, Comparison{Difference: 0, Percentage: 0, Trend: TrendFlat}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodOverPeriod(tc.current, tc.previous)
			if got != tc.want {
				t.Errorf("PeriodOverPeriod(%v, %v) = %+v, want %+v", tc.current, tc.previous, got, tc.want)
			}
		})
	}
}

func TestGrowthRate(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"doubling", []float64{50, 75, 100}, 100},
		{"decline", []float64{100, 50}, -50},
		{"zero start positive end", []float64{0, 10}, 100},
		{"zero start zero end", []float64{0, 0}, 0},
		{"single point", []float64{42}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GrowthRate(tc.series); got != tc.want {
				t.Errorf("GrowthRate(%v) = %v, want %v", tc.series, got, tc.want)
			}
		})
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4}, 2)
	want := []float64{1, 1.5, 2.5, 3.5}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("index %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMovingAverageWindowLargerThanSeries(t *testing.T) {
	got := MovingAverage([]float64{2, 4}, 10)
	want := []float64{2, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("index %d = %v, want %v", i, got[i], want[i])
		}
	}

	if got := MovingAverage(nil, 3); len(got) != 0 {
		t.Errorf("empty series returned %v", got)
	}
}
