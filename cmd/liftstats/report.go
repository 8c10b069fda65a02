package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/workouts"
)

const reportForecastWeeks = 12

var (
	reportCSVPath     string
	reportMappingPath string
	reportMonths      int
	reportExercise    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a training report for a workout log CSV",
	Long: `Print a colorized training report for a workout log CSV export.

The report covers the whole log: session count, inferred training age,
lifts trending up or down, personal records and muscle group volume.
Pass --exercise to add a progression and 1RM forecast section for one
exercise.

Examples:
  liftstats report --csv data/workouts.csv
  liftstats report --csv data/workouts.csv --months 3
  liftstats report --csv data/workouts.csv --exercise "Bench Press (Barbell)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd.Context())
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportCSVPath, "csv", "", "path to the workout log CSV export (required)")
	reportCmd.Flags().StringVar(&reportMappingPath, "mapping", "data/muscle_groups.json", "path to the exercise muscle group mapping")
	reportCmd.Flags().IntVar(&reportMonths, "months", 0, "only count the last N months for muscle volume (0 = whole log)")
	reportCmd.Flags().StringVar(&reportExercise, "exercise", "", "add a progression and forecast section for this exercise")
	rootCmd.AddCommand(reportCmd)
}

func runReport(ctx context.Context) error {
	if reportCSVPath == "" {
		return fmt.Errorf("missing --csv, pass the path to a workout log CSV export")
	}
	if reportMonths < 0 {
		return fmt.Errorf("invalid --months %d, must not be negative", reportMonths)
	}

	mapping, err := analytics.LoadMuscleMapping(reportMappingPath)
	if err != nil {
		return fmt.Errorf("load muscle mapping: %w", err)
	}

	csvFile, err := os.Open(reportCSVPath)
	if err != nil {
		return fmt.Errorf("open workouts csv: %w", err)
	}
	defer func() {
		if err := csvFile.Close(); err != nil {
			log.Warnf("close workouts csv file: %s", err)
		}
	}()

	store := workouts.NewStore(metrics.NewManager("liftstats", "cli", prometheus.NewRegistry()))
	snapshot, err := store.ReloadFromCSV(ctx, csvFile)
	if err != nil {
		return fmt.Errorf("parse workouts csv: %w", err)
	}

	analyzer := analytics.NewAnalyzer(store, mapping, analytics.DefaultConfig())

	printLogSummary(snapshot)
	printTrainingAge(analyzer.TrainingAge(ctx))
	printTrends(analyzer.Trends(ctx))
	printRecords(analyzer.Records(ctx))
	printMuscleVolume(analyzer.MuscleVolume(ctx, reportMonths))

	if reportExercise != "" {
		printExerciseSection(ctx, analyzer, reportExercise)
	}

	return nil
}

func printLogSummary(snapshot *workouts.Snapshot) {
	color.New(color.Bold).Println("Workout log")
	fmt.Printf("  %d sessions from %d rows (%d skipped)\n",
		len(snapshot.Sessions), snapshot.RowCount, snapshot.SkippedRows)
	if len(snapshot.Sessions) > 0 {
		// sessions are sorted newest first
		newest := snapshot.Sessions[0]
		oldest := snapshot.Sessions[len(snapshot.Sessions)-1]
		fmt.Printf("  %s to %s\n", oldest.StartTime, newest.StartTime)
	}
	fmt.Println()
}

func printTrainingAge(age analytics.TrainingAgeInfo) {
	color.New(color.Bold).Println("Training age")
	fmt.Printf("  %s, %.1f months of history (confidence: %s)\n",
		age.Classification, age.Months, age.Confidence)
	fmt.Printf("  %.1f workouts per week across %d sessions\n",
		age.WorkoutsPerWeek, age.TotalSessions)
	fmt.Println()
}

func printTrends(trends analytics.TrainingTrends) {
	color.New(color.Bold).Println("Trends")
	if len(trends.Improving) == 0 && len(trends.Declining) == 0 && len(trends.Stalling) == 0 {
		fmt.Println("  not enough history for trends yet")
		fmt.Println()
		return
	}
	for _, trend := range trends.Improving {
		color.Green("  ↑ %s: %+.1f%% (recent avg %.1f lbs)",
			trend.Exercise, trend.PercentChange, trend.RecentAvg)
	}
	for _, trend := range trends.Declining {
		color.Red("  ↓ %s: %+.1f%% (recent avg %.1f lbs)",
			trend.Exercise, trend.PercentChange, trend.RecentAvg)
	}
	for _, alert := range trends.Stalling {
		color.Yellow("  → %s: stuck around %.1f lbs for %s",
			alert.Exercise, alert.RecentAvg, alert.Duration)
	}
	fmt.Println()
}

func printRecords(records []analytics.PersonalRecord) {
	color.New(color.Bold).Println("Personal records")
	if len(records) == 0 {
		fmt.Println("  no records above the weight floor yet")
		fmt.Println()
		return
	}
	faint := color.New(color.Faint)
	for _, record := range records {
		fmt.Printf("  %-34s %6.1f lbs x %-2d  est. 1RM %6.1f lbs  %s\n",
			record.Exercise, record.WeightLbs, record.Reps,
			record.Estimated1RM, faint.Sprint(record.Date))
	}
	fmt.Println()
}

func printMuscleVolume(report analytics.MuscleVolumeReport) {
	color.New(color.Bold).Println("Muscle group volume")
	groups := make([]string, 0, len(report.Groups))
	for group := range report.Groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		vi, vj := report.Groups[groups[i]], report.Groups[groups[j]]
		if vi.Percent != vj.Percent {
			return vi.Percent > vj.Percent
		}
		return groups[i] < groups[j]
	})
	for _, group := range groups {
		entry := report.Groups[group]
		fmt.Printf("  %-10s %5.1f%%  volume %.0f\n", group, entry.Percent, entry.Volume)
	}
	fmt.Println()
}

func printExerciseSection(ctx context.Context, analyzer *analytics.Analyzer, exercise string) {
	color.New(color.Bold).Printf("Progression: %s\n", exercise)

	timeline := analyzer.Progression(ctx, exercise)
	if len(timeline) == 0 {
		color.Yellow("  exercise not found in the log")
		fmt.Println()
		return
	}

	first, last := timeline[0], timeline[len(timeline)-1]
	fmt.Printf("  %d sessions, %s to %s\n", len(timeline), first.Date, last.Date)
	if first.Epley1RM != nil && last.Epley1RM != nil {
		fmt.Printf("  estimated 1RM went %.1f lbs to %.1f lbs\n", *first.Epley1RM, *last.Epley1RM)
	}

	forecast, err := analyzer.Forecast(ctx, exercise, reportForecastWeeks)
	if err != nil {
		color.Yellow("  no forecast: %s", err)
		fmt.Println()
		return
	}

	fmt.Printf("  current 1RM %.1f lbs, projected on the %s curve:\n",
		forecast.Current1RM, forecast.Classification)
	for _, prediction := range forecast.Predictions {
		weeksOut := prediction.Week - forecast.CurrentWeek
		if weeksOut%4 != 0 {
			continue
		}
		fmt.Printf("  week +%-2d  %6.1f lbs  (%.1f to %.1f)\n",
			weeksOut, prediction.Predicted, prediction.Lower, prediction.Upper)
	}
	fmt.Println()
}
