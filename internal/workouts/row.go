package workouts

// RawSetRow is one logged set, as it comes out of a workout app CSV
// export. Numeric fields are nil when the export left them empty or
// when the value could not be parsed.
type RawSetRow struct {
	Title           string
	StartTime       string
	EndTime         string
	Description     string
	ExerciseTitle   string
	SetIndex        *int
	WeightLbs       *float64
	WeightKg        *float64
	Reps            *int
	DistanceMiles   *float64
	DurationSeconds *float64
	RPE             *float64
	ExerciseNotes   string
}
