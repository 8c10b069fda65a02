package workouts

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"sync/atomic"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	log "github.com/sirupsen/logrus"
)

const snapshotIDLength = 12

// Snapshot is one immutable view of the whole workout log. A reload
// builds a fresh snapshot and swaps it in atomically, readers holding
// the previous one are never affected.
type Snapshot struct {
	ID          string
	Sessions    []Session
	LoadedAt    time.Time
	RowCount    int
	SkippedRows int
}

// ExerciseInfo is a per-exercise summary across the whole log.
type ExerciseInfo struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
	Sets     int    `json:"sets"`
}

// Store holds the current workout log snapshot. All reads go through
// an atomic pointer, a reload publishes a completely new snapshot and
// never mutates a published one.
type Store struct {
	snapshot       atomic.Pointer[Snapshot]
	metricsManager *metrics.Manager
}

func NewStore(metricsManager *metrics.Manager) *Store {
	s := &Store{
		metricsManager: metricsManager,
	}
	s.snapshot.Store(&Snapshot{
		ID:       "empty",
		LoadedAt: time.Now(),
	})
	return s
}

// ReloadFromCSV parses a workout CSV export, builds sessions from it
// and atomically replaces the current snapshot. On any error the
// previous snapshot stays in place untouched.
func (s *Store) ReloadFromCSV(ctx context.Context, r io.Reader) (_ *Snapshot, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workouts.store.reload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()

	parsed, err := ParseCSV(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("parse workouts csv: %w", err)
	}

	id, err := pkg.GenerateRandomString(snapshotIDLength)
	if err != nil {
		return nil, fmt.Errorf("generate snapshot id: %w", err)
	}

	snapshot := &Snapshot{
		ID:          id,
		Sessions:    BuildSessions(parsed.Rows),
		LoadedAt:    time.Now(),
		RowCount:    len(parsed.Rows),
		SkippedRows: parsed.SkippedRows,
	}

	s.snapshot.Store(snapshot)

	if s.metricsManager != nil {
		s.metricsManager.CounterSnapshotReloads.Inc()
		s.metricsManager.GaugeSessions.Set(float64(len(snapshot.Sessions)))
		s.metricsManager.HistSnapshotReloadDuration.Observe(time.Since(start).Seconds())
	}

	log.Debugf(
		"workouts snapshot [%s] loaded: %d rows -> %d sessions (%d rows skipped)",
		snapshot.ID, snapshot.RowCount, len(snapshot.Sessions), snapshot.SkippedRows,
	)

	return snapshot, nil
}

// Current returns the snapshot visible right now. Callers must treat
// it as read-only.
func (s *Store) Current() *Snapshot {
	return s.snapshot.Load()
}

// Sessions returns the sessions of the current snapshot, newest first.
func (s *Store) Sessions() []Session {
	return s.Current().Sessions
}

// Exercises lists all exercise names in the current snapshot with
// session and set counts, sorted by name.
func (s *Store) Exercises() []ExerciseInfo {
	type counts struct {
		sessions int
		sets     int
	}
	byName := make(map[string]*counts)

	for _, session := range s.Sessions() {
		for name, sets := range session.Exercises {
			c, ok := byName[name]
			if !ok {
				c = &counts{}
				byName[name] = c
			}
			c.sessions++
			c.sets += len(sets)
		}
	}

	infos := make([]ExerciseInfo, 0, len(byName))
	for name, c := range byName {
		infos = append(infos, ExerciseInfo{
			Name:     name,
			Sessions: c.sessions,
			Sets:     c.sets,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}
