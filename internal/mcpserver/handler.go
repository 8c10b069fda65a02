package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultForecastWeeks = 12
	maxForecastWeeks     = 52
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *Handler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.ListExercises(ctx))
	}
}

// ExerciseInput is the input for tools that target one exercise.
type ExerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exact exercise name as it appears in the log (e.g. Bench Press (Barbell))"`
}

// ExerciseProgressionTool returns the MCP tool handler for get_exercise_progression.
func (h *Handler) ExerciseProgressionTool() func(context.Context, *mcp.CallToolRequest, ExerciseInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseInput) (*mcp.CallToolResult, any, error) {
		if in.Exercise == "" {
			return errorResult("Missing exercise: pass the exact exercise name")
		}
		return jsonResult(h.service.GetProgression(ctx, in.Exercise))
	}
}

// TrainingAgeTool returns the MCP tool handler for get_training_age.
func (h *Handler) TrainingAgeTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetTrainingAge(ctx))
	}
}

// TrainingTrendsTool returns the MCP tool handler for get_training_trends.
func (h *Handler) TrainingTrendsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetTrends(ctx))
	}
}

// PersonalRecordsTool returns the MCP tool handler for get_personal_records.
func (h *Handler) PersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetRecords(ctx))
	}
}

// ForecastInput is the input for forecast_one_rep_max.
type ForecastInput struct {
	Exercise string `json:"exercise" jsonschema:"Exact exercise name as it appears in the log"`
	Weeks    int    `json:"weeks,omitempty" jsonschema:"How many weeks ahead to project (1-52, default 12)"`
}

// ForecastTool returns the MCP tool handler for forecast_one_rep_max.
func (h *Handler) ForecastTool() func(context.Context, *mcp.CallToolRequest, ForecastInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ForecastInput) (*mcp.CallToolResult, any, error) {
		if in.Exercise == "" {
			return errorResult("Missing exercise: pass the exact exercise name")
		}
		weeks := in.Weeks
		if weeks == 0 {
			weeks = defaultForecastWeeks
		}
		if weeks < 1 || weeks > maxForecastWeeks {
			return errorResult(fmt.Sprintf("Invalid weeks %d: must be between 1 and %d", weeks, maxForecastWeeks))
		}

		forecast, err := h.service.GetForecast(ctx, in.Exercise, weeks)
		if err != nil {
			return errorResult("Error forecasting 1RM: " + err.Error())
		}
		return jsonResult(forecast)
	}
}

// MuscleVolumeInput is the input for get_muscle_volume.
type MuscleVolumeInput struct {
	Months int `json:"months,omitempty" jsonschema:"Only count sessions from the last N months (0 or omitted = whole log)"`
}

// MuscleVolumeTool returns the MCP tool handler for get_muscle_volume.
func (h *Handler) MuscleVolumeTool() func(context.Context, *mcp.CallToolRequest, MuscleVolumeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MuscleVolumeInput) (*mcp.CallToolResult, any, error) {
		if in.Months < 0 {
			return errorResult("Invalid months: must not be negative")
		}
		return jsonResult(h.service.GetMuscleVolume(ctx, in.Months))
	}
}

func jsonResult(payload any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
