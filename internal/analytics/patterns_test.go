package analytics

import (
	"math"
	"testing"
)

func TestDetectTrend(t *testing.T) {
	up := DetectTrend([]float64{10, 20, 30, 40, 50})
	if up.Class != TrendClassUp || !up.Sufficient {
		t.Errorf("rising series = %+v", up)
	}

	down := DetectTrend([]float64{50, 40, 30, 20, 10})
	if down.Class != TrendClassDown {
		t.Errorf("falling series = %+v", down)
	}

	stable := DetectTrend([]float64{100, 101, 99, 100, 100})
	if stable.Class != TrendClassStable {
		t.Errorf("flat series = %+v", stable)
	}

	if got := DetectTrend([]float64{5}); got.Sufficient {
		t.Errorf("single point should be insufficient: %+v", got)
	}
	if got := DetectTrend(nil); got.Class != TrendClassStable {
		t.Errorf("empty series = %+v", got)
	}
}

func TestFindAnomalies(t *testing.T) {
	// One extreme spike in an otherwise tight series.
	series := []float64{10, 11, 10, 9, 10, 11, 10, 100}
	anomalies := FindAnomalies(series, 2.0)
	if len(anomalies) != 1 {
		t.Fatalf("anomalies = %+v, want one", anomalies)
	}
	if anomalies[0].Index != 7 || anomalies[0].Value != 100 {
		t.Errorf("anomaly = %+v", anomalies[0])
	}
	if anomalies[0].ZScore <= 2.0 {
		t.Errorf("z-score = %v, want > 2", anomalies[0].ZScore)
	}
}

func TestFindAnomaliesDegenerate(t *testing.T) {
	if got := FindAnomalies([]float64{1, 2, 3, 4}, 2.0); got != nil {
		t.Errorf("short series returned %+v", got)
	}
	if got := FindAnomalies([]float64{5, 5, 5, 5, 5, 5}, 2.0); got != nil {
		t.Errorf("zero variance returned %+v", got)
	}
}

func TestDetectSeasonality(t *testing.T) {
	// Mean is 100; June is 30% high, December 30% low.
	months := []float64{100, 100, 100, 100, 100, 130, 100, 100, 100, 100, 100, 70}
	got := DetectSeasonality(months)
	if len(got) != 2 {
		t.Fatalf("seasonal months = %+v, want two", got)
	}
	if got[0].Month != 6 || got[0].Level != SeasonHigh {
		t.Errorf("first = %+v, want high June", got[0])
	}
	if got[1].Month != 12 || got[1].Level != SeasonLow {
		t.Errorf("second = %+v, want low December", got[1])
	}
	if math.Abs(got[0].DeviationPct-30) > 1e-9 {
		t.Errorf("June deviation = %v, want 30", got[0].DeviationPct)
	}
}

func TestDetectSeasonalityRequiresTwelveMonths(t *testing.T) {
	if got := DetectSeasonality([]float64{1, 2, 3}); got != nil {
		t.Errorf("partial year returned %+v", got)
	}
	if got := DetectSeasonality(make([]float64, 12)); got != nil {
		t.Errorf("all-zero year returned %+v", got)
	}
}
