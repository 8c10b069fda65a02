package analytics

import (
	"math"
)

// RegressionPoint is one observation on a strength timeline: the week
// number (1-based, from the first session) and the value measured that
// week, typically the best Epley estimate.
type RegressionPoint struct {
	Week  float64 `json:"week"`
	Value float64 `json:"value"`
}

// RegressionModel is a logarithmic growth curve value = a*ln(week) + b
// fit over a strength timeline. The log curve is deliberate, strength
// gains flatten with training age, a linear fit would not.
type RegressionModel struct {
	Slope         float64 `json:"slope"`
	Intercept     float64 `json:"intercept"`
	RSquared      float64 `json:"rSquared"`
	StandardError float64 `json:"standardError"`
	DataPoints    int     `json:"dataPoints"`
}

// ValueAt evaluates the fitted curve at the given week.
func (m *RegressionModel) ValueAt(week float64) float64 {
	if week <= 0 {
		return m.Intercept
	}
	return m.Slope*math.Log(week) + m.Intercept
}

// FitLogRegression fits value = a*ln(week) + b by ordinary least
// squares. Points with week <= 0 or a non-finite value are dropped
// first, fewer than two valid points yields no model (nil). RSquared
// is 0 when all values are identical, never NaN.
func FitLogRegression(points []RegressionPoint) *RegressionModel {
	var xs, ys []float64
	for _, p := range points {
		if p.Week <= 0 {
			continue
		}
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			continue
		}
		xs = append(xs, math.Log(p.Week))
		ys = append(ys, p.Value)
	}

	n := len(xs)
	if n < 2 {
		return nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denominator := float64(n)*sumXX - sumX*sumX
	if denominator == 0 {
		// all points in the same week, no curve to fit
		return nil
	}

	slope := (float64(n)*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / float64(n)

	meanY := sumY / float64(n)
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		predicted := slope*xs[i] + intercept
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
	}

	rSquared := 0.0
	if ssTot != 0 {
		rSquared = 1 - ssRes/ssTot
	}

	degreesOfFreedom := n - 2
	if degreesOfFreedom < 1 {
		degreesOfFreedom = 1
	}
	standardError := math.Sqrt(ssRes / float64(degreesOfFreedom))

	return &RegressionModel{
		Slope:         slope,
		Intercept:     intercept,
		RSquared:      rSquared,
		StandardError: standardError,
		DataPoints:    n,
	}
}
