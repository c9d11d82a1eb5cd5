package analytics

import "math"

// TrendClass is the classification DetectTrend assigns to a series.
type TrendClass string

const (
	TrendClassUp     TrendClass = "up"
	TrendClassDown   TrendClass = "down"
	TrendClassStable TrendClass = "stable"
)

// trendThresholdPct is the normalized-slope cutoff separating stable from
// trending series.
const trendThresholdPct = 5.0

// TrendResult describes the least-squares trend of a series.
type TrendResult struct {
	Class      TrendClass `json:"class"`
	SlopePct   float64    `json:"slope_pct"`
	Sufficient bool       `json:"sufficient"`
}

// DetectTrend fits an ordinary-least-squares line of value against index,
// normalizes the slope by the series mean into a percentage, and
// classifies at the 5% threshold. Fewer than 2 points, or a zero mean,
// yields an insufficient stable result.
func DetectTrend(series []float64) TrendResult {
	n := len(series)
	if n < 2 {
		return TrendResult{Class: TrendClassStable}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range series {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return TrendResult{Class: TrendClassStable}
	}
	slope := (fn*sumXY - sumX*sumY) / denom

	mean := sumY / fn
	if mean == 0 {
		return TrendResult{Class: TrendClassStable}
	}
	slopePct := slope / mean * 100

	class := TrendClassStable
	switch {
	case slopePct > trendThresholdPct:
		class = TrendClassUp
	case slopePct < -trendThresholdPct:
		class = TrendClassDown
	}
	return TrendResult{Class: class, SlopePct: slopePct, Sufficient: true}
}

// Anomaly is one series point whose z-score exceeded the threshold.
type Anomaly struct {
	Index  int     `json:"index"`
	Value  float64 `json:"value"`
	ZScore float64 `json:"z_score"`
}

// minAnomalyPoints is the smallest series FindAnomalies will analyze.
const minAnomalyPoints = 5

// FindAnomalies flags points whose z-score exceeds threshold. Series with
// fewer than 5 points or zero variance return an empty list.
func FindAnomalies(series []float64, threshold float64) []Anomaly {
	if len(series) < minAnomalyPoints {
		return nil
	}
	if threshold <= 0 {
		threshold = 2.0
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))
	if variance == 0 {
		return nil
	}
	stdev := math.Sqrt(variance)

	var out []Anomaly
	for i, v := range series {
		z := math.Abs(v-mean) / stdev
		if z > threshold {
			out = append(out, Anomaly{Index: i, Value: v, ZScore: z})
		}
	}
	return out
}

// SeasonLevel marks a month as unusually high or low.
type SeasonLevel string

const (
	SeasonHigh SeasonLevel = "high"
	SeasonLow  SeasonLevel = "low"
)

// SeasonalMonth is one month deviating from the yearly mean.
type SeasonalMonth struct {
	Month        int         `json:"month"` // 1-12
	Value        float64     `json:"value"`
	DeviationPct float64     `json:"deviation_pct"`
	Level        SeasonLevel `json:"level"`
}

// seasonalityThresholdPct is the deviation from the yearly mean that
// makes a month seasonal.
const seasonalityThresholdPct = 20.0

// DetectSeasonality flags months deviating more than 20% from the yearly
// mean. It requires exactly 12 monthly values; anything else (or a zero
// mean) returns nil.
func DetectSeasonality(monthlyValues []float64) []SeasonalMonth {
	if len(monthlyValues) != 12 {
		return nil
	}

	mean := 0.0
	for _, v := range monthlyValues {
		mean += v
	}
	mean /= 12
	if mean == 0 {
		return nil
	}

	var out []SeasonalMonth
	for i, v := range monthlyValues {
		dev := (v - mean) / mean * 100
		if math.Abs(dev) <= seasonalityThresholdPct {
			continue
		}
		level := SeasonHigh
		if dev < 0 {
			level = SeasonLow
		}
		out = append(out, SeasonalMonth{Month: i + 1, Value: v, DeviationPct: dev, Level: level})
	}
	return out
}
