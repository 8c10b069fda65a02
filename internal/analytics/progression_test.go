package analytics_test

import (
	"testing"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseProgression(t *testing.T) {
	rows := []workouts.RawSetRow{
		{Title: "Leg Day", StartTime: "2024-02-01", ExerciseTitle: "Squat", WeightLbs: floatPtr(220), Reps: intPtr(5)},
		{Title: "Leg Day", StartTime: "2024-01-01", ExerciseTitle: "Squat", WeightLbs: floatPtr(200), Reps: intPtr(5)},
		{Title: "Push Day", StartTime: "2024-01-15", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(155), Reps: intPtr(8)},
	}
	sessions := workouts.BuildSessions(rows)

	timeline := analytics.ExerciseProgression(sessions, "Squat")
	require.Len(t, timeline, 2)

	// ascending by date even though the session list is newest first
	assert.Equal(t, "2024-01-01", timeline[0].Date)
	assert.Equal(t, "2024-02-01", timeline[1].Date)

	require.NotNil(t, timeline[0].MaxWeight)
	assert.Equal(t, 200.0, *timeline[0].MaxWeight)
	require.NotNil(t, timeline[1].MaxWeight)
	assert.Equal(t, 220.0, *timeline[1].MaxWeight)

	// the 1RM estimates must beat the raw weight at 5 reps
	require.NotNil(t, timeline[0].Epley1RM)
	assert.Greater(t, *timeline[0].Epley1RM, *timeline[0].MaxWeight)
	require.NotNil(t, timeline[1].Epley1RM)
	assert.Greater(t, *timeline[1].Epley1RM, *timeline[1].MaxWeight)
	require.NotNil(t, timeline[0].Brzycki1RM)
	assert.Greater(t, *timeline[0].Brzycki1RM, *timeline[0].MaxWeight)
}

func TestExerciseProgression_ExactNameMatch(t *testing.T) {
	rows := []workouts.RawSetRow{
		{Title: "A", StartTime: "2024-01-01", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(135), Reps: intPtr(5)},
		{Title: "A", StartTime: "2024-01-01", ExerciseTitle: "bench press", WeightLbs: floatPtr(95), Reps: intPtr(5)},
	}
	sessions := workouts.BuildSessions(rows)

	timeline := analytics.ExerciseProgression(sessions, "Bench Press")
	require.Len(t, timeline, 1)
	assert.Equal(t, 135.0, *timeline[0].MaxWeight)

	assert.Empty(t, analytics.ExerciseProgression(sessions, "Deadlift"))
}

func TestExerciseProgression_SetsWithoutReps(t *testing.T) {
	rows := []workouts.RawSetRow{
		// heaviest set has no reps: counts for maxWeight, not for the estimates
		{Title: "A", StartTime: "2024-01-01", ExerciseTitle: "Deadlift", WeightLbs: floatPtr(405)},
		{Title: "A", StartTime: "2024-01-01", ExerciseTitle: "Deadlift", WeightLbs: floatPtr(315), Reps: intPtr(5)},
		// reps but no weight: counts for totalSets only
		{Title: "A", StartTime: "2024-01-01", ExerciseTitle: "Deadlift", Reps: intPtr(10)},
	}
	sessions := workouts.BuildSessions(rows)

	timeline := analytics.ExerciseProgression(sessions, "Deadlift")
	require.Len(t, timeline, 1)

	point := timeline[0]
	require.NotNil(t, point.MaxWeight)
	assert.Equal(t, 405.0, *point.MaxWeight)

	// best estimate comes from 315x5, not from the repless 405
	require.NotNil(t, point.Epley1RM)
	assert.InDelta(t, 315*(1+5.0/30), *point.Epley1RM, 1e-9)

	assert.Equal(t, 2, point.TotalSets)
}

func TestExerciseProgression_StableOnEqualTimestamps(t *testing.T) {
	rows := []workouts.RawSetRow{
		{Title: "Session One", StartTime: "2024-03-01 10:00:00", ExerciseTitle: "Curl", WeightLbs: floatPtr(30), Reps: intPtr(12)},
		{Title: "Session Two", StartTime: "2024-03-01 10:00:00", ExerciseTitle: "Curl", WeightLbs: floatPtr(35), Reps: intPtr(10)},
		{Title: "Session Three", StartTime: "2024-03-01 10:00:00", ExerciseTitle: "Curl", WeightLbs: floatPtr(40), Reps: intPtr(8)},
	}
	sessions := workouts.BuildSessions(rows)

	timeline := analytics.ExerciseProgression(sessions, "Curl")
	require.Len(t, timeline, 3)

	// identical timestamps keep the input sequence order
	assert.Equal(t, workouts.SessionKey("Session One", "2024-03-01 10:00:00"), timeline[0].SessionID)
	assert.Equal(t, workouts.SessionKey("Session Two", "2024-03-01 10:00:00"), timeline[1].SessionID)
	assert.Equal(t, workouts.SessionKey("Session Three", "2024-03-01 10:00:00"), timeline[2].SessionID)
}

func TestExerciseProgression_EndToEnd(t *testing.T) {
	rows := []workouts.RawSetRow{
		{Title: "Push", StartTime: "2024-01-01", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(135), Reps: intPtr(10)},
		{Title: "Push", StartTime: "2024-01-01", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(155), Reps: intPtr(8)},
		{Title: "Push", StartTime: "2024-01-01", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(175), Reps: intPtr(5)},
		{Title: "Push", StartTime: "2024-01-31", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(180), Reps: intPtr(5)},
		{Title: "Push", StartTime: "2024-03-01", ExerciseTitle: "Bench Press", WeightLbs: floatPtr(185), Reps: intPtr(5)},
	}
	sessions := workouts.BuildSessions(rows)

	timeline := analytics.ExerciseProgression(sessions, "Bench Press")
	require.Len(t, timeline, 3)

	maxWeights := []float64{*timeline[0].MaxWeight, *timeline[1].MaxWeight, *timeline[2].MaxWeight}
	assert.Equal(t, []float64{175, 180, 185}, maxWeights)
	assert.Less(t, maxWeights[0], maxWeights[1])
	assert.Less(t, maxWeights[1], maxWeights[2])

	assert.Equal(t, 3, timeline[0].TotalSets)
	assert.Equal(t, 1, timeline[1].TotalSets)
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
