package analytics

import (
	"sort"

	"github.com/2beens/liftstats/internal/workouts"
)

// ExerciseTrend is one exercise whose recent working weights moved
// clearly up or down.
type ExerciseTrend struct {
	Exercise      string  `json:"exercise"`
	RecentAvg     float64 `json:"recentAvg"`
	PreviousAvg   float64 `json:"previousAvg"`
	PercentChange float64 `json:"percentChange"`
}

// StallingAlert is an exercise stuck in a narrow weight band. Duration
// is a fixed label, not a measured plateau length.
type StallingAlert struct {
	Exercise  string  `json:"exercise"`
	RecentAvg float64 `json:"recentAvg"`
	Duration  string  `json:"duration"`
}

// TrainingTrends buckets exercises by where their working weight is
// heading. Improving is sorted by change descending, declining by
// change ascending (worst first), each capped at cfg.TrendListCap.
type TrainingTrends struct {
	Improving []ExerciseTrend `json:"improving"`
	Declining []ExerciseTrend `json:"declining"`
	Stalling  []StallingAlert `json:"stalling"`
}

type weightPoint struct {
	at     int64
	weight float64
}

// AnalyzeTrainingTrends compares, per exercise, the average top weight
// of the most recent cfg.TrendWindowSize sessions against the window
// right before it. Exercises without two full windows of history are
// skipped. Changes beyond cfg.TrendChangePercent in either direction
// classify as improving or declining, otherwise the exercise counts as
// stalling when its last cfg.StallingWindowSize top weights all sit
// within cfg.StallingBandPercent of the recent average.
func AnalyzeTrainingTrends(sessions []workouts.Session, cfg Config) TrainingTrends {
	byExercise := make(map[string][]weightPoint)
	for _, session := range sessions {
		at := int64(-1 << 62)
		if t, ok := session.Start(); ok {
			at = t.UnixNano()
		}
		for name, sets := range session.Exercises {
			var maxWeight *float64
			for _, set := range sets {
				if set.WeightLbs == nil {
					continue
				}
				if maxWeight == nil || *set.WeightLbs > *maxWeight {
					maxWeight = set.WeightLbs
				}
			}
			if maxWeight == nil {
				continue
			}
			byExercise[name] = append(byExercise[name], weightPoint{at: at, weight: *maxWeight})
		}
	}

	trends := TrainingTrends{
		Improving: []ExerciseTrend{},
		Declining: []ExerciseTrend{},
		Stalling:  []StallingAlert{},
	}

	for name, points := range byExercise {
		if len(points) < cfg.TrendWindowSize {
			continue
		}
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].at < points[j].at
		})

		recent := points[len(points)-cfg.TrendWindowSize:]
		prior := points[:len(points)-cfg.TrendWindowSize]
		if len(prior) < cfg.TrendWindowSize {
			continue
		}
		prior = prior[len(prior)-cfg.TrendWindowSize:]

		recentAvg := avgWeight(recent)
		previousAvg := avgWeight(prior)
		if previousAvg == 0 {
			// nothing sensible to report against an all-zero baseline
			continue
		}

		percentChange := (recentAvg - previousAvg) / previousAvg * 100

		switch {
		case percentChange > cfg.TrendChangePercent:
			trends.Improving = append(trends.Improving, ExerciseTrend{
				Exercise:      name,
				RecentAvg:     recentAvg,
				PreviousAvg:   previousAvg,
				PercentChange: percentChange,
			})
		case percentChange < -cfg.TrendChangePercent:
			trends.Declining = append(trends.Declining, ExerciseTrend{
				Exercise:      name,
				RecentAvg:     recentAvg,
				PreviousAvg:   previousAvg,
				PercentChange: percentChange,
			})
		default:
			if isStalling(points, recentAvg, cfg) {
				trends.Stalling = append(trends.Stalling, StallingAlert{
					Exercise:  name,
					RecentAvg: recentAvg,
					Duration:  cfg.StallingDuration,
				})
			}
		}
	}

	sort.Slice(trends.Improving, func(i, j int) bool {
		if trends.Improving[i].PercentChange != trends.Improving[j].PercentChange {
			return trends.Improving[i].PercentChange > trends.Improving[j].PercentChange
		}
		return trends.Improving[i].Exercise < trends.Improving[j].Exercise
	})
	sort.Slice(trends.Declining, func(i, j int) bool {
		if trends.Declining[i].PercentChange != trends.Declining[j].PercentChange {
			return trends.Declining[i].PercentChange < trends.Declining[j].PercentChange
		}
		return trends.Declining[i].Exercise < trends.Declining[j].Exercise
	})
	sort.Slice(trends.Stalling, func(i, j int) bool {
		return trends.Stalling[i].Exercise < trends.Stalling[j].Exercise
	})

	if len(trends.Improving) > cfg.TrendListCap {
		trends.Improving = trends.Improving[:cfg.TrendListCap]
	}
	if len(trends.Declining) > cfg.TrendListCap {
		trends.Declining = trends.Declining[:cfg.TrendListCap]
	}
	if len(trends.Stalling) > cfg.TrendListCap {
		trends.Stalling = trends.Stalling[:cfg.TrendListCap]
	}

	return trends
}

func isStalling(points []weightPoint, recentAvg float64, cfg Config) bool {
	if len(points) < cfg.StallingWindowSize {
		return false
	}
	band := recentAvg * cfg.StallingBandPercent / 100
	for _, p := range points[len(points)-cfg.StallingWindowSize:] {
		diff := p.weight - recentAvg
		if diff < 0 {
			diff = -diff
		}
		if diff > band {
			return false
		}
	}
	return true
}

func avgWeight(points []weightPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.weight
	}
	return sum / float64(len(points))
}
