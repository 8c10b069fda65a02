package analytics

import (
	"math"
	"sort"

	"github.com/2beens/liftstats/internal/workouts"
)

// PersonalRecord is the best set ever logged for one exercise, ranked
// by its Epley estimate. Estimated1RM is rounded to one decimal.
type PersonalRecord struct {
	Exercise     string  `json:"exercise"`
	WeightLbs    float64 `json:"weightLbs"`
	Reps         int     `json:"reps"`
	Estimated1RM float64 `json:"estimated1RM"`
	Date         string  `json:"date"`
}

// PersonalRecords finds, per exercise, the set with the highest Epley
// estimate across all sessions. Sets without a positive weight are
// ignored, missing or zero reps count as a single near-maximal rep.
// Exercises whose record weight is at or below cfg.PRWeightFloorLbs
// are dropped, that floor keeps bodyweight and light accessory work
// off the board. The result is sorted by estimated 1RM descending,
// capped at cfg.PRListCap.
func PersonalRecords(sessions []workouts.Session, cfg Config) []PersonalRecord {
	type rawRecord struct {
		record    PersonalRecord
		estimated float64
	}
	best := make(map[string]rawRecord)

	for _, session := range sessions {
		for name, sets := range session.Exercises {
			for _, set := range sets {
				if set.WeightLbs == nil || *set.WeightLbs <= 0 {
					continue
				}

				reps := 1
				if set.Reps != nil && *set.Reps > 0 {
					reps = *set.Reps
				}

				estimated, err := Epley1RM(*set.WeightLbs, reps)
				if err != nil {
					continue
				}

				if current, ok := best[name]; ok && estimated <= current.estimated {
					continue
				}
				best[name] = rawRecord{
					record: PersonalRecord{
						Exercise:  name,
						WeightLbs: *set.WeightLbs,
						Reps:      reps,
						Date:      session.StartTime,
					},
					estimated: estimated,
				}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(best))
	for _, raw := range best {
		if raw.record.WeightLbs <= cfg.PRWeightFloorLbs {
			continue
		}
		raw.record.Estimated1RM = math.Round(raw.estimated*10) / 10
		records = append(records, raw.record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Estimated1RM != records[j].Estimated1RM {
			return records[i].Estimated1RM > records[j].Estimated1RM
		}
		return records[i].Exercise < records[j].Exercise
	})

	if len(records) > cfg.PRListCap {
		records = records[:cfg.PRListCap]
	}

	return records
}
