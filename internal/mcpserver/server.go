package mcpserver

import (
	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with workout log tools: exercises,
// progression, training age, trends, personal records, 1RM forecast,
// muscle volume. Used by the main backend when mounting MCP at /mcp
// (internal/server) and by the stdio binary (cmd/liftstats_mcp).
func NewServer(store *workouts.Store, analyzer *analytics.Analyzer) *mcp.Server {
	svc := NewContextService(store, analyzer)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftstats-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns every exercise in the workout log with its session and set counts. Use first to learn the exact exercise names the other tools expect.",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progression",
		Description: "Returns the per-session timeline for one exercise: date, top weight, Epley and Brzycki 1RM estimates, set count. Arg: exercise (exact name). Use when you need how a lift developed over time.",
	}, h.ExerciseProgressionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_age",
		Description: "Returns the inferred training age: classification (novice/intermediate/advanced), months of history, workouts per week, confidence. Use when advice depends on experience level.",
	}, h.TrainingAgeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_trends",
		Description: "Returns lifts bucketed into improving, declining and stalling, comparing recent sessions against the previous block. Use when you want to see what is moving and what is stuck.",
	}, h.TrainingTrendsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the top personal records: best set per exercise ranked by estimated 1RM, with weight, reps and date. Use when you need all-time bests.",
	}, h.PersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "forecast_one_rep_max",
		Description: "Projects an exercise's estimated 1RM into the future with confidence bounds, based on the fitted progression curve and training age. Args: exercise (exact name); optional: weeks (1-52, default 12).",
	}, h.ForecastTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_volume",
		Description: "Returns training volume (weight x reps) distributed across muscle groups, as totals and percentages. Optional: months (only count the last N months). Use when checking balance between muscle groups.",
	}, h.MuscleVolumeTool())

	return s
}
