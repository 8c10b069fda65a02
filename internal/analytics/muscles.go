package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/2beens/liftstats/internal/workouts"

	"go.uber.org/multierr"
)

// ExerciseMuscles lists the muscle groups an exercise trains. Primary
// groups receive the full set volume, secondary ones a reduced share.
type ExerciseMuscles struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// MuscleMapping is the exercise to muscle group mapping document.
// RadarGroups is the canonical group list rendered on the volume
// radar, MuscleAliases folds fine-grained muscle names into those
// canonical groups.
type MuscleMapping struct {
	Exercises     map[string]ExerciseMuscles `json:"exercises"`
	RadarGroups   []string                   `json:"radarGroups"`
	MuscleAliases map[string]string          `json:"muscleAliases"`
}

// LoadMuscleMapping reads and validates a muscle mapping JSON file.
func LoadMuscleMapping(path string) (*MuscleMapping, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read muscle mapping: %w", err)
	}

	var mapping MuscleMapping
	if err := json.Unmarshal(content, &mapping); err != nil {
		return nil, fmt.Errorf("unmarshal muscle mapping: %w", err)
	}

	if err := mapping.Validate(); err != nil {
		return nil, fmt.Errorf("invalid muscle mapping: %w", err)
	}

	return &mapping, nil
}

// Validate reports all structural problems of the mapping at once.
func (m *MuscleMapping) Validate() error {
	var err error
	if len(m.Exercises) == 0 {
		err = multierr.Append(err, errors.New("no exercises mapped"))
	}
	if len(m.RadarGroups) == 0 {
		err = multierr.Append(err, errors.New("no radar groups defined"))
	}

	canonical := make(map[string]bool, len(m.RadarGroups))
	for _, group := range m.RadarGroups {
		canonical[group] = true
	}
	for alias, target := range m.MuscleAliases {
		if !canonical[target] {
			err = multierr.Append(err, fmt.Errorf("alias %q points to unknown group %q", alias, target))
		}
	}

	return err
}

// Canonical resolves a muscle name through the alias table. Names
// without an alias entry pass through unchanged.
func (m *MuscleMapping) Canonical(name string) string {
	if target, ok := m.MuscleAliases[name]; ok {
		return target
	}
	return name
}

// MuscleVolumeEntry is one muscle group's accumulated volume and its
// share of the total, in percent.
type MuscleVolumeEntry struct {
	Volume  float64 `json:"volume"`
	Percent float64 `json:"percent"`
}

// MuscleVolumeReport maps canonical muscle group names to their
// volume. Every radar group is present even at zero volume, so a radar
// chart always has all its axes.
type MuscleVolumeReport struct {
	Groups   map[string]MuscleVolumeEntry `json:"groups"`
	Sessions int                          `json:"sessions"`
}

// MuscleVolume distributes set volume (weight * reps) across muscle
// groups. Primary muscles of an exercise receive the full volume,
// secondary ones cfg.SecondaryMuscleWeight of it. With months > 0 only
// sessions within that many months before now count. Exercises without
// a mapping entry and sets without both weight and reps are skipped.
// A zero total leaves all percentages at 0.
func MuscleVolume(
	sessions []workouts.Session,
	mapping *MuscleMapping,
	months int,
	now time.Time,
	cfg Config,
) MuscleVolumeReport {
	volumes := make(map[string]float64, len(mapping.RadarGroups))
	for _, group := range mapping.RadarGroups {
		volumes[group] = 0
	}

	var cutoff time.Time
	if months > 0 {
		cutoff = now.AddDate(0, -months, 0)
	}

	var included int
	for _, session := range sessions {
		if months > 0 {
			start, ok := session.Start()
			if !ok || start.Before(cutoff) {
				continue
			}
		}
		included++

		for name, sets := range session.Exercises {
			muscles, ok := mapping.Exercises[name]
			if !ok {
				continue
			}

			var exerciseVolume float64
			for _, set := range sets {
				if set.WeightLbs == nil || set.Reps == nil {
					continue
				}
				exerciseVolume += *set.WeightLbs * float64(*set.Reps)
			}
			if exerciseVolume == 0 {
				continue
			}

			for _, muscle := range muscles.Primary {
				volumes[mapping.Canonical(muscle)] += exerciseVolume
			}
			for _, muscle := range muscles.Secondary {
				volumes[mapping.Canonical(muscle)] += exerciseVolume * cfg.SecondaryMuscleWeight
			}
		}
	}

	var total float64
	for _, volume := range volumes {
		total += volume
	}

	groups := make(map[string]MuscleVolumeEntry, len(volumes))
	for group, volume := range volumes {
		percent := 0.0
		if total > 0 {
			percent = volume / total * 100
		}
		groups[group] = MuscleVolumeEntry{
			Volume:  volume,
			Percent: percent,
		}
	}

	return MuscleVolumeReport{
		Groups:   groups,
		Sessions: included,
	}
}
