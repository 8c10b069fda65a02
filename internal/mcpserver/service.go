package mcpserver

import (
	"context"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/workouts"
)

// ExercisesSource provides the exercise inventory of the current
// snapshot (for dependency injection and testing).
type ExercisesSource interface {
	Exercises() []workouts.ExerciseInfo
}

// statsAnalyzer provides the workout analytics (for dependency injection and testing).
type statsAnalyzer interface {
	Progression(ctx context.Context, exercise string) []analytics.TimelinePoint
	TrainingAge(ctx context.Context) analytics.TrainingAgeInfo
	Trends(ctx context.Context) analytics.TrainingTrends
	Records(ctx context.Context) []analytics.PersonalRecord
	Forecast(ctx context.Context, exercise string, weeksAhead int) (*analytics.ForecastResult, error)
	MuscleVolume(ctx context.Context, months int) analytics.MuscleVolumeReport
}

// contextService provides workout log context data (exercises, timelines, analytics).
// Used by Handler for testability.
type contextService interface {
	ListExercises(ctx context.Context) []workouts.ExerciseInfo
	GetProgression(ctx context.Context, exercise string) []analytics.TimelinePoint
	GetTrainingAge(ctx context.Context) analytics.TrainingAgeInfo
	GetTrends(ctx context.Context) analytics.TrainingTrends
	GetRecords(ctx context.Context) []analytics.PersonalRecord
	GetForecast(ctx context.Context, exercise string, weeksAhead int) (*analytics.ForecastResult, error)
	GetMuscleVolume(ctx context.Context, months int) analytics.MuscleVolumeReport
}

// ContextService holds dependencies and implements the workout log context business logic.
type ContextService struct {
	exercises ExercisesSource
	analyzer  statsAnalyzer
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(exercises ExercisesSource, analyzer statsAnalyzer) *ContextService {
	return &ContextService{
		exercises: exercises,
		analyzer:  analyzer,
	}
}

// ListExercises returns every exercise in the log with its session and set counts.
func (s *ContextService) ListExercises(_ context.Context) []workouts.ExerciseInfo {
	return s.exercises.Exercises()
}

// GetProgression returns the per-session timeline (top weight, 1RM estimates) for an exercise.
func (s *ContextService) GetProgression(ctx context.Context, exercise string) []analytics.TimelinePoint {
	return s.analyzer.Progression(ctx, exercise)
}

// GetTrainingAge returns the inferred training age classification.
func (s *ContextService) GetTrainingAge(ctx context.Context) analytics.TrainingAgeInfo {
	return s.analyzer.TrainingAge(ctx)
}

// GetTrends returns improving, declining and stalling lifts.
func (s *ContextService) GetTrends(ctx context.Context) analytics.TrainingTrends {
	return s.analyzer.Trends(ctx)
}

// GetRecords returns the top personal records by estimated 1RM.
func (s *ContextService) GetRecords(ctx context.Context) []analytics.PersonalRecord {
	return s.analyzer.Records(ctx)
}

// GetForecast returns the bounded 1RM projection for an exercise.
func (s *ContextService) GetForecast(ctx context.Context, exercise string, weeksAhead int) (*analytics.ForecastResult, error) {
	return s.analyzer.Forecast(ctx, exercise, weeksAhead)
}

// GetMuscleVolume returns the muscle group volume split, optionally windowed to the last months.
func (s *ContextService) GetMuscleVolume(ctx context.Context, months int) analytics.MuscleVolumeReport {
	return s.analyzer.MuscleVolume(ctx, months)
}
