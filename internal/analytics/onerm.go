package analytics

import (
	"errors"
)

const (
	epleyRepsDivisor = 30.0

	brzyckiNumeratorConst = 1.0278
	brzyckiRepsFactor     = 0.0278

	// BrzyckiMaxReps is the highest rep count the Brzycki formula accepts.
	// The denominator crosses zero at reps ~36.97, beyond that the formula
	// yields negative or unbounded values.
	BrzyckiMaxReps = 36
)

var (
	ErrNegativeWeight     = errors.New("weight must be non-negative")
	ErrNegativeReps       = errors.New("reps must be non-negative")
	ErrBrzyckiRepsTooHigh = errors.New("brzycki formula undefined above 36 reps")
)

// Epley1RM estimates a one-rep max as weight * (1 + reps/30). At zero
// reps the weight is returned unchanged, there is no extrapolation to
// make. Strictly increasing in reps, linear in weight.
func Epley1RM(weightLbs float64, reps int) (float64, error) {
	if weightLbs < 0 {
		return 0, ErrNegativeWeight
	}
	if reps < 0 {
		return 0, ErrNegativeReps
	}
	if reps == 0 {
		return weightLbs, nil
	}
	return weightLbs * (1 + float64(reps)/epleyRepsDivisor), nil
}

// Brzycki1RM estimates a one-rep max as weight / (1.0278 - 0.0278*reps).
// Rep counts above BrzyckiMaxReps are rejected with
// ErrBrzyckiRepsTooHigh instead of producing values past the pole.
func Brzycki1RM(weightLbs float64, reps int) (float64, error) {
	if weightLbs < 0 {
		return 0, ErrNegativeWeight
	}
	if reps < 0 {
		return 0, ErrNegativeReps
	}
	if reps > BrzyckiMaxReps {
		return 0, ErrBrzyckiRepsTooHigh
	}
	return weightLbs / (brzyckiNumeratorConst - brzyckiRepsFactor*float64(reps)), nil
}
