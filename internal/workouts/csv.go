package workouts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names of a workout app CSV export. The parser maps columns by
// header name, so column order and extra columns do not matter.
const (
	colTitle           = "title"
	colStartTime       = "start_time"
	colEndTime         = "end_time"
	colDescription     = "description"
	colExerciseTitle   = "exercise_title"
	colSetIndex        = "set_index"
	colWeightLbs       = "weight_lbs"
	colWeightKg        = "weight_kg"
	colReps            = "reps"
	colDistanceMiles   = "distance_miles"
	colDurationSeconds = "duration_seconds"
	colRPE             = "rpe"
	colExerciseNotes   = "exercise_notes"
)

// ParseResult is the outcome of reading one CSV export. SkippedRows
// counts rows dropped for having neither a title nor a start time,
// such rows cannot be attributed to any session.
type ParseResult struct {
	Rows        []RawSetRow
	SkippedRows int
}

// ParseCSV reads a workout app CSV export. Rows shorter than the
// header are padded with empty fields, unparsable numeric values
// become nil. Only structurally broken CSV input yields an error.
func ParseCSV(reader *csv.Reader) (*ParseResult, error) {
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("workouts csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read workouts csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns[colTitle]; !ok {
		return nil, fmt.Errorf("workouts csv has no %q column", colTitle)
	}

	result := &ParseResult{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read workouts csv record: %w", err)
		}

		row := RawSetRow{
			Title:           stringField(record, columns, colTitle),
			StartTime:       stringField(record, columns, colStartTime),
			EndTime:         stringField(record, columns, colEndTime),
			Description:     stringField(record, columns, colDescription),
			ExerciseTitle:   stringField(record, columns, colExerciseTitle),
			SetIndex:        intField(record, columns, colSetIndex),
			WeightLbs:       floatField(record, columns, colWeightLbs),
			WeightKg:        floatField(record, columns, colWeightKg),
			Reps:            intField(record, columns, colReps),
			DistanceMiles:   floatField(record, columns, colDistanceMiles),
			DurationSeconds: floatField(record, columns, colDurationSeconds),
			RPE:             floatField(record, columns, colRPE),
			ExerciseNotes:   stringField(record, columns, colExerciseNotes),
		}

		if row.Title == "" && row.StartTime == "" {
			result.SkippedRows++
			continue
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func stringField(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func floatField(record []string, columns map[string]int, name string) *float64 {
	raw := stringField(record, columns, name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func intField(record []string, columns map[string]int, name string) *int {
	raw := stringField(record, columns, name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
