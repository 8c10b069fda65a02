package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=context_mocks_test.go -package=chat_test

const (
	oneHour               = 60 * 60
	contextCacheKeyPrefix = "chat-context::"
	contextCacheSize      = 10 * 1024 * 1024

	recentSessionsInPrompt = 3
	recordsInPrompt        = 5
	muscleVolumeMonths     = 3
)

type chatAnalyzer interface {
	SnapshotID() string
	RecentSessions(limit int) []workouts.Session
	TrainingAge(ctx context.Context) analytics.TrainingAgeInfo
	Trends(ctx context.Context) analytics.TrainingTrends
	Records(ctx context.Context) []analytics.PersonalRecord
	MuscleVolume(ctx context.Context, months int) analytics.MuscleVolumeReport
}

// ContextBuilder assembles the system prompt for the assistant from
// the current snapshot's analytics. Analytics are pure functions of
// the snapshot, so the assembled prompt is cached per snapshot ID and
// only rebuilt after a reload.
type ContextBuilder struct {
	analyzer       chatAnalyzer
	cache          *freecache.Cache
	cacheTTL       int // seconds
	metricsManager *metrics.Manager
}

func NewContextBuilder(analyzer chatAnalyzer, cacheTTLSeconds int, metricsManager *metrics.Manager) *ContextBuilder {
	if cacheTTLSeconds <= 0 {
		cacheTTLSeconds = oneHour
	}
	return &ContextBuilder{
		analyzer:       analyzer,
		cache:          freecache.NewCache(contextCacheSize),
		cacheTTL:       cacheTTLSeconds,
		metricsManager: metricsManager,
	}
}

// SystemPrompt returns the assistant context for the current snapshot,
// from cache when possible.
func (b *ContextBuilder) SystemPrompt(ctx context.Context) string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.context.systemPrompt")
	defer span.End()

	snapshotID := b.analyzer.SnapshotID()
	cacheKey := []byte(contextCacheKeyPrefix + snapshotID)
	if cachedPrompt, err := b.cache.Get(cacheKey); err == nil {
		log.Tracef("chat context for snapshot %s found in cache", snapshotID)
		b.metricsManager.CounterChatContextCacheHits.Inc()
		return string(cachedPrompt)
	}

	prompt := b.assemble(ctx)

	if err := b.cache.Set(cacheKey, []byte(prompt), b.cacheTTL); err != nil {
		log.Errorf("failed to write chat context cache for snapshot %s: %s", snapshotID, err)
	}

	return prompt
}

func (b *ContextBuilder) assemble(ctx context.Context) string {
	var sb strings.Builder

	sb.WriteString("You are a strength training assistant. Answer questions using the lifter's workout log data below. Be specific, cite the numbers, and keep replies short.\n")

	age := b.analyzer.TrainingAge(ctx)
	fmt.Fprintf(&sb,
		"\nLifter profile: %s, %.1f months of training history, %.1f workouts per week, %d sessions logged (confidence: %s).\n",
		age.Classification, age.Months, age.WorkoutsPerWeek, age.TotalSessions, age.Confidence,
	)

	if recent := b.analyzer.RecentSessions(recentSessionsInPrompt); len(recent) > 0 {
		sb.WriteString("\nMost recent sessions:\n")
		for _, session := range recent {
			fmt.Fprintf(&sb, "- %s (%s): %d sets across %d exercises\n",
				session.Title, session.StartTime, session.TotalSets(), len(session.Exercises))
		}
	}

	trends := b.analyzer.Trends(ctx)
	if len(trends.Improving) > 0 {
		sb.WriteString("\nImproving lifts:\n")
		for _, trend := range trends.Improving {
			fmt.Fprintf(&sb, "- %s: %+.1f%%, recent average %.1f lbs\n", trend.Exercise, trend.PercentChange, trend.RecentAvg)
		}
	}
	if len(trends.Declining) > 0 {
		sb.WriteString("\nDeclining lifts:\n")
		for _, trend := range trends.Declining {
			fmt.Fprintf(&sb, "- %s: %+.1f%%, recent average %.1f lbs\n", trend.Exercise, trend.PercentChange, trend.RecentAvg)
		}
	}
	if len(trends.Stalling) > 0 {
		sb.WriteString("\nStalling lifts:\n")
		for _, alert := range trends.Stalling {
			fmt.Fprintf(&sb, "- %s: stuck around %.1f lbs for %s\n", alert.Exercise, alert.RecentAvg, alert.Duration)
		}
	}

	records := b.analyzer.Records(ctx)
	if len(records) > recordsInPrompt {
		records = records[:recordsInPrompt]
	}
	if len(records) > 0 {
		sb.WriteString("\nPersonal records:\n")
		for _, record := range records {
			fmt.Fprintf(&sb, "- %s: %.1f lbs x %d reps on %s, estimated 1RM %.1f lbs\n",
				record.Exercise, record.WeightLbs, record.Reps, record.Date, record.Estimated1RM)
		}
	}

	volume := b.analyzer.MuscleVolume(ctx, muscleVolumeMonths)
	if len(volume.Groups) > 0 {
		fmt.Fprintf(&sb, "\nMuscle volume split over the last %d months:\n", muscleVolumeMonths)
		for _, group := range sortedVolumeGroups(volume) {
			fmt.Fprintf(&sb, "- %s: %.1f%%\n", group, volume.Groups[group].Percent)
		}
	}

	return sb.String()
}

// sortedVolumeGroups orders muscle groups by share, biggest first, so
// the prompt stays stable for the same snapshot.
func sortedVolumeGroups(volume analytics.MuscleVolumeReport) []string {
	groups := make([]string, 0, len(volume.Groups))
	for group := range volume.Groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		pi, pj := volume.Groups[groups[i]].Percent, volume.Groups[groups[j]].Percent
		if pi != pj {
			return pi > pj
		}
		return groups[i] < groups[j]
	})
	return groups
}
