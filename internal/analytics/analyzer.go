package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

var (
	// ErrExerciseNotFound says the exercise never appears in the log.
	ErrExerciseNotFound = errors.New("exercise not found in workout log")
	// ErrNotEnoughData says the log has no usable values to compute from.
	ErrNotEnoughData = errors.New("not enough workout data")
)

type sessionsSource interface {
	Sessions() []workouts.Session
	Current() *workouts.Snapshot
}

// Analyzer runs the analytics functions against the current workout
// snapshot. It holds no state of its own beyond the mapping and the
// thresholds, every call reads whatever snapshot is current.
type Analyzer struct {
	source  sessionsSource
	mapping *MuscleMapping
	cfg     Config
}

func NewAnalyzer(source sessionsSource, mapping *MuscleMapping, cfg Config) *Analyzer {
	return &Analyzer{
		source:  source,
		mapping: mapping,
		cfg:     cfg,
	}
}

// SnapshotID identifies the snapshot all computed results came from.
func (a *Analyzer) SnapshotID() string {
	return a.source.Current().ID
}

func (a *Analyzer) Config() Config {
	return a.cfg
}

// RecentSessions returns up to limit newest sessions from the current
// snapshot. Sessions come back in the snapshot order, newest first.
func (a *Analyzer) RecentSessions(limit int) []workouts.Session {
	sessions := a.source.Sessions()
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions
}

func (a *Analyzer) Progression(ctx context.Context, exercise string) []TimelinePoint {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.progression")
	defer span.End()

	return ExerciseProgression(a.source.Sessions(), exercise)
}

func (a *Analyzer) TrainingAge(ctx context.Context) TrainingAgeInfo {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.trainingAge")
	defer span.End()

	return InferTrainingAge(a.source.Sessions(), a.cfg)
}

func (a *Analyzer) Trends(ctx context.Context) TrainingTrends {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.trends")
	defer span.End()

	return AnalyzeTrainingTrends(a.source.Sessions(), a.cfg)
}

func (a *Analyzer) Records(ctx context.Context) []PersonalRecord {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.records")
	defer span.End()

	return PersonalRecords(a.source.Sessions(), a.cfg)
}

func (a *Analyzer) MuscleVolume(ctx context.Context, months int) MuscleVolumeReport {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.muscleVolume")
	defer span.End()

	return MuscleVolume(a.source.Sessions(), a.mapping, months, time.Now(), a.cfg)
}

// ForecastResult is a full forecast for one exercise: where the lifter
// stands now, the fitted growth curve (nil when under two usable
// points) and the week by week projection.
type ForecastResult struct {
	Exercise       string           `json:"exercise"`
	Classification Classification   `json:"classification"`
	Current1RM     float64          `json:"current1RM"`
	CurrentWeek    int              `json:"currentWeek"`
	Model          *RegressionModel `json:"model,omitempty"`
	Predictions    []Prediction     `json:"predictions"`
}

// Forecast builds the exercise's progression timeline, fits the log
// regression over it and projects the 1RM weeksAhead weeks into the
// future. The latest timeline value seeds the projection, so the
// forecast continues from what was actually lifted, not from the
// fitted curve.
func (a *Analyzer) Forecast(ctx context.Context, exercise string, weeksAhead int) (_ *ForecastResult, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "analytics.analyzer.forecast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions := a.source.Sessions()

	timeline := ExerciseProgression(sessions, exercise)
	if len(timeline) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrExerciseNotFound, exercise)
	}

	points := TimelineRegressionPoints(timeline)
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no dated sets with weight for %q", ErrNotEnoughData, exercise)
	}

	latest := points[len(points)-1]
	current1RM := latest.Value
	currentWeek := int(latest.Week)

	model := FitLogRegression(points)
	classification := InferTrainingAge(sessions, a.cfg).Classification

	predictions := PredictFuture1RM(model, currentWeek, weeksAhead, classification, &current1RM, a.cfg)

	return &ForecastResult{
		Exercise:       exercise,
		Classification: classification,
		Current1RM:     current1RM,
		CurrentWeek:    currentWeek,
		Model:          model,
		Predictions:    predictions,
	}, nil
}

// TimelineRegressionPoints converts a progression timeline into
// week/value pairs for the regression. Weeks are 1-based, counted in
// 7-day steps from the first dated point. A point's value is its best
// Epley estimate, falling back to the top weight; points with neither,
// or without a parsable date, are dropped.
func TimelineRegressionPoints(timeline []TimelinePoint) []RegressionPoint {
	var first time.Time
	var haveFirst bool
	for _, point := range timeline {
		if t, ok := workouts.ParseWorkoutTime(point.Date); ok {
			first = t
			haveFirst = true
			break
		}
	}
	if !haveFirst {
		return nil
	}

	var points []RegressionPoint
	for _, point := range timeline {
		t, ok := workouts.ParseWorkoutTime(point.Date)
		if !ok {
			continue
		}

		var value float64
		switch {
		case point.Epley1RM != nil:
			value = *point.Epley1RM
		case point.MaxWeight != nil:
			value = *point.MaxWeight
		default:
			continue
		}

		week := float64(int(t.Sub(first).Hours()/(24*7)) + 1)
		if week < 1 {
			continue
		}

		points = append(points, RegressionPoint{
			Week:  week,
			Value: value,
		})
	}

	return points
}
