package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=analytics_test

const (
	defaultForecastWeeks = 12
	maxForecastWeeks     = 52
)

type statsAnalyzer interface {
	Progression(ctx context.Context, exercise string) []TimelinePoint
	TrainingAge(ctx context.Context) TrainingAgeInfo
	Trends(ctx context.Context) TrainingTrends
	Records(ctx context.Context) []PersonalRecord
	Forecast(ctx context.Context, exercise string, weeksAhead int) (*ForecastResult, error)
	MuscleVolume(ctx context.Context, months int) MuscleVolumeReport
}

type Handler struct {
	analyzer statsAnalyzer
}

func NewHandler(analyzer statsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

type ProgressionResponse struct {
	Exercise string          `json:"exercise"`
	Timeline []TimelinePoint `json:"timeline"`
	Total    int             `json:"total"`
}

type RecordsResponse struct {
	Records []PersonalRecord `json:"records"`
	Total   int              `json:"total"`
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.progression")
	defer span.End()

	vars := mux.Vars(r)
	exercise := vars["exercise"]
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	timeline := handler.analyzer.Progression(ctx, exercise)
	if timeline == nil {
		timeline = []TimelinePoint{}
	}

	handler.writeJSON(w, ProgressionResponse{
		Exercise: exercise,
		Timeline: timeline,
		Total:    len(timeline),
	})
}

func (handler *Handler) HandleTrainingAge(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trainingAge")
	defer span.End()

	handler.writeJSON(w, handler.analyzer.TrainingAge(ctx))
}

func (handler *Handler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.trends")
	defer span.End()

	handler.writeJSON(w, handler.analyzer.Trends(ctx))
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	records := handler.analyzer.Records(ctx)
	if records == nil {
		records = []PersonalRecord{}
	}

	handler.writeJSON(w, RecordsResponse{
		Records: records,
		Total:   len(records),
	})
}

func (handler *Handler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.forecast")
	defer span.End()

	vars := mux.Vars(r)
	exercise := vars["exercise"]
	if exercise == "" {
		http.Error(w, "error, exercise empty", http.StatusBadRequest)
		return
	}

	weeks := defaultForecastWeeks
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		parsed, err := strconv.Atoi(weeksParam)
		if err != nil {
			log.Errorf("handle forecast, from <weeks> param: %s", err)
			http.Error(w, "parse form error, parameter <weeks>", http.StatusBadRequest)
			return
		}
		weeks = parsed
	}
	if weeks < 1 || weeks > maxForecastWeeks {
		http.Error(w, "invalid weeks, must be between 1 and 52", http.StatusBadRequest)
		return
	}

	forecast, err := handler.analyzer.Forecast(ctx, exercise, weeks)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) || errors.Is(err, ErrNotEnoughData) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("handle forecast for [%s]: %s", exercise, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.writeJSON(w, forecast)
}

func (handler *Handler) HandleMuscleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscleVolume")
	defer span.End()

	months := 0
	if monthsParam := r.URL.Query().Get("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil {
			log.Errorf("handle muscle volume, from <months> param: %s", err)
			http.Error(w, "parse form error, parameter <months>", http.StatusBadRequest)
			return
		}
		months = parsed
	}
	if months < 0 {
		http.Error(w, "invalid months, must not be negative", http.StatusBadRequest)
		return
	}

	handler.writeJSON(w, handler.analyzer.MuscleVolume(ctx, months))
}

func (handler *Handler) writeJSON(w http.ResponseWriter, payload any) {
	respBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal stats response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
