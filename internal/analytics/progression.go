package analytics

import (
	"sort"

	"github.com/2beens/liftstats/internal/workouts"
)

// TimelinePoint is one session's worth of progression data for a
// single exercise. MaxWeight and the 1RM estimates are nil when no set
// in that session carried the needed values.
type TimelinePoint struct {
	SessionID  string   `json:"sessionId"`
	Date       string   `json:"date"`
	MaxWeight  *float64 `json:"maxWeight"`
	Epley1RM   *float64 `json:"epley1RM"`
	Brzycki1RM *float64 `json:"brzycki1RM"`
	TotalSets  int      `json:"totalSets"`
}

// ExerciseProgression builds the per-session timeline for one exercise,
// matched by exact name. For each session containing the exercise it
// tracks the heaviest set and the best Epley and Brzycki estimates.
// Sets without a reps value still count toward MaxWeight but are
// skipped for the 1RM estimates and for TotalSets. The result is
// sorted by session date ascending, points with identical timestamps
// keep their relative order from the input.
func ExerciseProgression(sessions []workouts.Session, exercise string) []TimelinePoint {
	type datedPoint struct {
		point TimelinePoint
		at    int64
	}

	var points []datedPoint
	for _, session := range sessions {
		sets := session.Exercises[exercise]
		if len(sets) == 0 {
			continue
		}

		var maxWeight, maxEpley, maxBrzycki *float64
		var totalSets int
		for _, set := range sets {
			if set.WeightLbs != nil {
				if maxWeight == nil || *set.WeightLbs > *maxWeight {
					w := *set.WeightLbs
					maxWeight = &w
				}
			}

			if set.Reps == nil {
				continue
			}
			totalSets++

			if set.WeightLbs == nil {
				continue
			}
			if epley, err := Epley1RM(*set.WeightLbs, *set.Reps); err == nil {
				if maxEpley == nil || epley > *maxEpley {
					maxEpley = &epley
				}
			}
			if brzycki, err := Brzycki1RM(*set.WeightLbs, *set.Reps); err == nil {
				if maxBrzycki == nil || brzycki > *maxBrzycki {
					maxBrzycki = &brzycki
				}
			}
		}

		dp := datedPoint{
			point: TimelinePoint{
				SessionID:  session.ID,
				Date:       session.StartTime,
				MaxWeight:  maxWeight,
				Epley1RM:   maxEpley,
				Brzycki1RM: maxBrzycki,
				TotalSets:  totalSets,
			},
		}
		if t, ok := session.Start(); ok {
			dp.at = t.UnixNano()
		} else {
			dp.at = -1 << 62
		}
		points = append(points, dp)
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].at < points[j].at
	})

	timeline := make([]TimelinePoint, 0, len(points))
	for _, dp := range points {
		timeline = append(timeline, dp.point)
	}
	return timeline
}
