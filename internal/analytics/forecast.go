package analytics

import (
	"math"
)

// Momentum multipliers derived from the regression fit. A clean upward
// trend accelerates the forecast a little, a noisy or downward one
// pulls it back.
const (
	momentumStrongTrend = 1.2
	momentumNeutral     = 1.0
	momentumNoisy       = 0.8
	momentumDeclining   = 0.5

	momentumStrongRSquared = 0.5
	momentumNoisyRSquared  = 0.3

	upperBandFactor = 1.5
)

// Prediction is one forecast week. Predicted never decreases from week
// to week, never drops below the starting 1RM and never exceeds the
// ceiling. Lower and Upper are the confidence band around it.
type Prediction struct {
	Week      int     `json:"week"`
	Predicted float64 `json:"predicted"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
}

// PredictFuture1RM projects a 1RM forward week by week. The starting
// value is the explicit current1RM when given, otherwise the model
// evaluated at currentWeek; a non-positive starting value yields no
// predictions. Each week adds current * baseRate * momentum *
// diminishing, where diminishing shrinks as the value approaches the
// classification's ceiling, so the curve flattens instead of growing
// without bound. The confidence band widens linearly with the horizon.
func PredictFuture1RM(
	model *RegressionModel,
	currentWeek int,
	weeksAhead int,
	classification Classification,
	current1RM *float64,
	cfg Config,
) []Prediction {
	var starting float64
	switch {
	case current1RM != nil:
		starting = *current1RM
	case model != nil:
		starting = model.ValueAt(float64(currentWeek))
	}
	if starting <= 0 || weeksAhead < 1 {
		return nil
	}

	rate := cfg.rateFor(classification)
	ceiling := starting * rate.CeilingMultiplier
	momentum := momentumFactor(model)

	current := starting
	predictions := make([]Prediction, 0, weeksAhead)
	for i := 1; i <= weeksAhead; i++ {
		progress := 0.0
		if ceiling > starting {
			progress = (current - starting) / (ceiling - starting)
			if progress < 0 {
				progress = 0
			}
			if progress > 1 {
				progress = 1
			}
		}
		diminishing := 1 - math.Sqrt(progress)

		current += current * rate.WeeklyGainRate * momentum * diminishing
		if current > ceiling {
			current = ceiling
		}

		variance := cfg.ForecastVarianceRate * current * float64(i)
		lower := current - variance
		if lower < starting {
			lower = starting
		}
		upper := current + upperBandFactor*variance
		if upper > ceiling {
			upper = ceiling
		}

		predictions = append(predictions, Prediction{
			Week:      currentWeek + i,
			Predicted: current,
			Lower:     lower,
			Upper:     upper,
		})
	}

	return predictions
}

func momentumFactor(model *RegressionModel) float64 {
	if model == nil {
		return momentumNeutral
	}
	switch {
	case model.Slope > 0 && model.RSquared > momentumStrongRSquared:
		return momentumStrongTrend
	case model.Slope > 0:
		return momentumNeutral
	case model.RSquared < momentumNoisyRSquared:
		return momentumNoisy
	case model.Slope < 0:
		return momentumDeclining
	default:
		return momentumNeutral
	}
}
