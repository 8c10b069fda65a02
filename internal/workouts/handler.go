package workouts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

// maxUploadedCSVSize caps workout CSV uploads at 50 MB.
const maxUploadedCSVSize = 50 << 20

type workoutsStore interface {
	ReloadFromCSV(ctx context.Context, r io.Reader) (*Snapshot, error)
	Current() *Snapshot
	Sessions() []Session
	Exercises() []ExerciseInfo
}

type Handler struct {
	store workoutsStore
}

func NewHandler(store workoutsStore) *Handler {
	return &Handler{
		store: store,
	}
}

type UploadResponse struct {
	SnapshotID  string `json:"snapshotId"`
	Sessions    int    `json:"sessions"`
	Rows        int    `json:"rows"`
	SkippedRows int    `json:"skippedRows"`
}

type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type ExercisesResponse struct {
	Exercises []ExerciseInfo `json:"exercises"`
	Total     int            `json:"total"`
}

// HandleUpload replaces the workout log with a freshly uploaded CSV
// export. The file comes either as a multipart form field "file" or as
// the raw request body.
func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.upload")
	defer span.End()

	body, cleanup, err := uploadedCSV(r)
	if err != nil {
		log.Errorf("handle workouts upload: %s", err)
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	defer cleanup()

	snapshot, err := handler.store.ReloadFromCSV(ctx, body)
	if err != nil {
		log.Errorf("handle workouts upload, reload: %s", err)
		http.Error(w, "failed to load workouts csv", http.StatusBadRequest)
		return
	}

	resp := UploadResponse{
		SnapshotID:  snapshot.ID,
		Sessions:    len(snapshot.Sessions),
		Rows:        snapshot.RowCount,
		SkippedRows: snapshot.SkippedRows,
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal upload response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func uploadedCSV(r *http.Request) (io.Reader, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return http.MaxBytesReader(nil, r.Body, maxUploadedCSVSize), noop, nil
	}

	if err := r.ParseMultipartForm(maxUploadedCSVSize); err != nil {
		return nil, noop, err
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, noop, err
	}
	return file, func() {
		if err := file.Close(); err != nil {
			log.Errorf("close uploaded csv file: %s", err)
		}
	}, nil
}

// HandleListSessions returns all sessions of the current snapshot,
// newest first.
func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessions")
	defer span.End()

	sessions := handler.store.Sessions()

	handler.writeSessions(w, sessions, len(sessions))
}

// HandleListSessionsPage returns one page of sessions, newest first.
func (handler *Handler) HandleListSessionsPage(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sessionsPage")
	defer span.End()

	vars := mux.Vars(r)

	pageStr := vars["page"]
	if pageStr == "" {
		http.Error(w, "error, page empty", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Errorf("handle list sessions page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}

	sizeStr := vars["size"]
	if sizeStr == "" {
		http.Error(w, "error, size empty", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Errorf("handle list sessions page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 || size < 1 {
		http.Error(w, "invalid page or size", http.StatusBadRequest)
		return
	}

	sessions := handler.store.Sessions()
	total := len(sessions)

	from := (page - 1) * size
	if from >= total {
		handler.writeSessions(w, []Session{}, total)
		return
	}
	to := from + size
	if to > total {
		to = total
	}

	handler.writeSessions(w, sessions[from:to], total)
}

func (handler *Handler) writeSessions(w http.ResponseWriter, sessions []Session, total int) {
	resp := SessionsResponse{
		Sessions: sessions,
		Total:    total,
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal sessions response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

// HandleListExercises returns all exercise names seen in the log, with
// session and set counts.
func (handler *Handler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	exercises := handler.store.Exercises()

	resp := ExercisesResponse{
		Exercises: exercises,
		Total:     len(exercises),
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal exercises response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
