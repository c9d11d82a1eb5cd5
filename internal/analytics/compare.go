// Package analytics computes period comparisons and series statistics.
// Degenerate inputs (empty series, zero baselines, too few points) return
// explicit zero-valued or insufficient-data results, never panics.
package analytics

// Trend is the direction of a comparison or series.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Comparison is the result of a period-over-period calculation.
type Comparison struct {
	Difference float64 `json:"difference"`
	Percentage float64 `json:"percentage"`
	Trend      Trend   `json:"trend"`
}

// PeriodOverPeriod compares a current value against the previous period's
// value. Percentage is guarded to 0 when previous is 0.
func PeriodOverPeriod(current, previous float64) Comparison {
	diff := current - previous

	pct := 0.0
	if previous != 0 {
		pct = diff / previous * 100
	}

	trend := TrendFlat
	switch {
	case diff > 0:
		trend = TrendUp
	case diff < 0:
		trend = TrendDown
	}

	return Comparison{Difference: diff, Percentage: pct, Trend: trend}
}

// GrowthRate returns the percentage change from the first to the last
// element. A zero first element yields 100 when the series ends positive,
// otherwise 0. Series shorter than 2 yield 0.
func GrowthRate(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0]
	last := series[len(series)-1]
	if first == 0 {
		if last > 0 {
			return 100
		}
		return 0
	}
	return (last - first) / first * 100
}

// MovingAverage returns a same-length series; before the window fills,
// each point averages all available points so far.
func MovingAverage(series []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(series))
	sum := 0.0
	for i, v := range series {
		sum += v
		n := window
		if i+1 < window {
			n = i + 1
		} else if i >= window {
			sum -= series[i-window]
		}
		out[i] = sum / float64(n)
	}
	return out
}
