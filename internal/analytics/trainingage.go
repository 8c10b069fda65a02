package analytics

import (
	"math"
	"sort"

	"github.com/2beens/liftstats/internal/workouts"
)

// daysPerMonth is the mean Gregorian month length.
const daysPerMonth = 30.44

// TrainingAgeInfo describes how long and how consistently someone has
// been training. Months is rounded to one decimal.
type TrainingAgeInfo struct {
	Classification  Classification `json:"classification"`
	Months          float64        `json:"months"`
	Confidence      Confidence     `json:"confidence"`
	WorkoutsPerWeek float64        `json:"workoutsPerWeek"`
	TotalSessions   int            `json:"totalSessions"`
}

// InferTrainingAge classifies the training age from the span between
// the first and last session with a parsable date. Sessions without a
// parsable date are ignored. A sparse log (fewer than
// cfg.MinWorkoutsPerWeek sessions per week) downgrades confidence to
// low for anyone past the novice stage, a long span with little data
// in it says little about actual training history.
func InferTrainingAge(sessions []workouts.Session, cfg Config) TrainingAgeInfo {
	var dates []int64
	for _, session := range sessions {
		if t, ok := session.Start(); ok {
			dates = append(dates, t.UnixNano())
		}
	}

	if len(dates) == 0 {
		return TrainingAgeInfo{
			Classification: ClassificationNovice,
			Months:         0,
			Confidence:     ConfidenceLow,
		}
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	spanDays := float64(dates[len(dates)-1]-dates[0]) / float64(24*60*60*1e9)
	months := spanDays / daysPerMonth
	weeks := spanDays / 7
	if weeks < 1 {
		weeks = 1
	}
	workoutsPerWeek := float64(len(dates)) / weeks

	var classification Classification
	switch {
	case months < cfg.NoviceMaxMonths:
		classification = ClassificationNovice
	case months < cfg.IntermediateMaxMonths:
		classification = ClassificationIntermediate
	default:
		classification = ClassificationAdvanced
	}

	var confidence Confidence
	switch classification {
	case ClassificationNovice:
		if months < cfg.LowConfidenceMonths {
			confidence = ConfidenceLow
		} else {
			confidence = ConfidenceMedium
		}
	case ClassificationIntermediate:
		confidence = ConfidenceMedium
	case ClassificationAdvanced:
		confidence = ConfidenceHigh
	}
	if workoutsPerWeek < cfg.MinWorkoutsPerWeek && classification != ClassificationNovice {
		confidence = ConfidenceLow
	}

	return TrainingAgeInfo{
		Classification:  classification,
		Months:          math.Round(months*10) / 10,
		Confidence:      confidence,
		WorkoutsPerWeek: workoutsPerWeek,
		TotalSessions:   len(dates),
	}
}
