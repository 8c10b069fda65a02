package analytics

// Classification buckets lifters by how long they have been training.
type Classification string

const (
	ClassificationNovice       Classification = "novice"
	ClassificationIntermediate Classification = "intermediate"
	ClassificationAdvanced     Classification = "advanced"
)

// Confidence says how much the training age classification can be
// trusted given the span and density of the data behind it.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ForecastRate is the per-classification growth profile used by the
// 1RM forecast: the weekly base gain and the highest multiple of the
// current 1RM considered achievable.
type ForecastRate struct {
	WeeklyGainRate    float64
	CeilingMultiplier float64
}

// Config collects all tuned thresholds of the analytics engine in one
// place. None of these are derived from first principles, they are
// heuristics, so they live here instead of being buried in the
// algorithms.
type Config struct {
	// training age: month cutoffs and confidence rules
	NoviceMaxMonths       float64
	IntermediateMaxMonths float64
	LowConfidenceMonths   float64
	MinWorkoutsPerWeek    float64

	// trend detection: comparison windows and bands
	TrendWindowSize     int
	TrendChangePercent  float64
	StallingWindowSize  int
	StallingBandPercent float64
	StallingDuration    string
	TrendListCap        int

	// personal records
	PRWeightFloorLbs float64
	PRListCap        int

	// forecast growth profiles and confidence band width
	NoviceRate           ForecastRate
	IntermediateRate     ForecastRate
	AdvancedRate         ForecastRate
	ForecastVarianceRate float64

	// muscle volume distribution
	SecondaryMuscleWeight float64
}

func DefaultConfig() Config {
	return Config{
		NoviceMaxMonths:       6,
		IntermediateMaxMonths: 24,
		LowConfidenceMonths:   3,
		MinWorkoutsPerWeek:    2,

		TrendWindowSize:     4,
		TrendChangePercent:  2,
		StallingWindowSize:  8,
		StallingBandPercent: 3,
		StallingDuration:    "4 weeks",
		TrendListCap:        5,

		PRWeightFloorLbs: 50,
		PRListCap:        10,

		NoviceRate:           ForecastRate{WeeklyGainRate: 0.015, CeilingMultiplier: 2.0},
		IntermediateRate:     ForecastRate{WeeklyGainRate: 0.006, CeilingMultiplier: 1.4},
		AdvancedRate:         ForecastRate{WeeklyGainRate: 0.002, CeilingMultiplier: 1.15},
		ForecastVarianceRate: 0.01,

		SecondaryMuscleWeight: 0.4,
	}
}

func (c Config) rateFor(classification Classification) ForecastRate {
	switch classification {
	case ClassificationIntermediate:
		return c.IntermediateRate
	case ClassificationAdvanced:
		return c.AdvancedRate
	default:
		return c.NoviceRate
	}
}
