package workouts

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// KgToLbs is the conversion factor from kilograms to pounds.
	KgToLbs = 2.20462262185

	// UnknownExercise is the name given to sets logged without an exercise title.
	UnknownExercise = "(unknown)"

	// sessionKeySeparator joins workout title and start time into a session id.
	sessionKeySeparator = "|||"
)

// Set is one performed set within a session. Weight is always in
// pounds, converted from kilograms at build time when the export
// carried only metric values.
type Set struct {
	SetIndex        *int     `json:"setIndex,omitempty"`
	WeightLbs       *float64 `json:"weightLbs,omitempty"`
	Reps            *int     `json:"reps,omitempty"`
	DistanceMiles   *float64 `json:"distanceMiles,omitempty"`
	DurationSeconds *float64 `json:"durationSeconds,omitempty"`
	RPE             *float64 `json:"rpe,omitempty"`
	ExerciseNotes   string   `json:"exerciseNotes,omitempty"`
}

// Session is one workout: all sets sharing the same title and start
// time, grouped by exercise name. Set order within an exercise is the
// row order of the source export.
type Session struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime,omitempty"`
	Description string           `json:"description,omitempty"`
	Exercises   map[string][]Set `json:"exercises"`
}

// Start parses the session start time. The second return value is
// false when the start time is empty or in none of the known layouts.
func (s *Session) Start() (time.Time, bool) {
	return ParseWorkoutTime(s.StartTime)
}

// TotalSets counts all sets in the session, across all exercises.
func (s *Session) TotalSets() int {
	var total int
	for _, sets := range s.Exercises {
		total += len(sets)
	}
	return total
}

func (s *Session) String() string {
	return fmt.Sprintf("%s [%s]: %d exercises, %d sets",
		s.Title, s.StartTime, len(s.Exercises), s.TotalSets(),
	)
}

// SessionKey builds the identity of a session. Empty title or start
// time are valid key components, two rows with both fields empty still
// land in the same (single) session.
func SessionKey(title, startTime string) string {
	return title + sessionKeySeparator + startTime
}

var workoutTimeLayouts = []string{
	"2 Jan 2006, 15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseWorkoutTime parses the timestamp formats seen in workout app
// exports, e.g. "07 Jan 2024, 17:30" or RFC 3339.
func ParseWorkoutTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range workoutTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildSessions groups raw set rows into sessions. Every row ends up in
// exactly one session, no row is ever dropped here. The returned slice
// is sorted by start time descending, sessions with an unparsable start
// time go last, ties keep their first-seen order.
func BuildSessions(rows []RawSetRow) []Session {
	byKey := make(map[string]*Session)
	var order []string

	for _, row := range rows {
		key := SessionKey(row.Title, row.StartTime)
		session, ok := byKey[key]
		if !ok {
			session = &Session{
				ID:          key,
				Title:       row.Title,
				StartTime:   row.StartTime,
				EndTime:     row.EndTime,
				Description: row.Description,
				Exercises:   make(map[string][]Set),
			}
			byKey[key] = session
			order = append(order, key)
		}

		exercise := row.ExerciseTitle
		if exercise == "" {
			exercise = UnknownExercise
		}

		session.Exercises[exercise] = append(session.Exercises[exercise], Set{
			SetIndex:        copyInt(row.SetIndex),
			WeightLbs:       normalizedWeightLbs(row),
			Reps:            copyInt(row.Reps),
			DistanceMiles:   copyFloat(row.DistanceMiles),
			DurationSeconds: copyFloat(row.DurationSeconds),
			RPE:             copyFloat(row.RPE),
			ExerciseNotes:   row.ExerciseNotes,
		})
	}

	type datedSession struct {
		session Session
		start   int64
	}

	dated := make([]datedSession, 0, len(order))
	for _, key := range order {
		ds := datedSession{session: *byKey[key]}
		if t, ok := byKey[key].Start(); ok {
			ds.start = t.UnixNano()
		} else {
			// unparsable start times sort as the minimum, i.e. last in a descending list
			ds.start = -1 << 62
		}
		dated = append(dated, ds)
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].start > dated[j].start
	})

	sessions := make([]Session, 0, len(dated))
	for _, ds := range dated {
		sessions = append(sessions, ds.session)
	}
	return sessions
}

// normalizedWeightLbs resolves the weight of a row to pounds: the lbs
// column wins when both are present.
func normalizedWeightLbs(row RawSetRow) *float64 {
	if row.WeightLbs != nil {
		w := *row.WeightLbs
		return &w
	}
	if row.WeightKg != nil {
		w := *row.WeightKg * KgToLbs
		return &w
	}
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
