package app

import (
	"context"
	"sync"
	"time"

	"studytrack/domain/realstats"
	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DashboardService computes the aggregate view on the main panel. All
// figures come from the realstats core with its fixed rounding; the
// report and the AI prompt reuse the same DashboardSummary struct so
// nothing can drift.
type DashboardService struct {
	sessions ports.SessionRepository
	stats    *realstats.Instrumented
}

// NewDashboardService creates a new dashboard service. The observer is
// optional diagnostics and may be nil.
func NewDashboardService(sessions ports.SessionRepository, observer realstats.Observer) *DashboardService {
	return &DashboardService{
		sessions: sessions,
		stats:    realstats.NewInstrumented(observer),
	}
}

// Summary computes the dashboard for a user across all logged sessions.
// An empty history yields a zero-valued summary, not an error: "no data
// yet" is a normal dashboard state, unlike a failed fetch.
func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (models.DashboardSummary, error) {
	sessions, err := s.sessions.ListSessions(ctx, userID, 0)
	if err != nil {
		return models.DashboardSummary{}, errors.Wrap(err, "failed to load sessions for dashboard")
	}
	return s.Summarize(sessions), nil
}

// Summarize computes the dashboard figures over an already-loaded
// session list. Per-metric blocks are independent, so they are computed
// concurrently.
func (s *DashboardService) Summarize(sessions []*models.StudySession) models.DashboardSummary {
	summary := models.DashboardSummary{
		SessionCount: len(sessions),
		Metrics:      make(map[models.Metric]models.MetricSummary, len(models.Metrics())),
		GeneratedAt:  time.Now(),
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, metric := range models.Metrics() {
		metric := metric
		g.Go(func() error {
			series := models.ExtractSeries(sessions, metric)
			block := models.MetricSummary{
				Metric:   metric,
				Count:    len(series),
				Mean:     s.stats.Mean(series),
				Supremum: s.stats.Supremum(series),
				Infimum:  s.stats.Infimum(series),
				Variance: s.stats.Variance(series),
				StdDev:   s.stats.StdDev(series),
			}
			mu.Lock()
			summary.Metrics[metric] = block
			mu.Unlock()
			return nil
		})
	}
	// The per-metric goroutines never return errors; Wait just joins them.
	_ = g.Wait()

	durations := models.ExtractSeries(sessions, models.MetricDuration)
	summary.TotalHours = s.stats.Integrate(durations, realstats.DefaultInterval)
	summary.SmoothedHours = s.smoothedHours(durations)

	if len(durations) > 0 {
		durationBlock := summary.Metrics[models.MetricDuration]
		latest := durations[len(durations)-1]
		summary.LatestZScore = s.stats.ZScore(latest, durationBlock.Mean, durationBlock.StdDev)
	}

	return summary
}

// smoothedHours folds the exponential moving average across the
// duration series in session order, seeded with the first observation.
func (s *DashboardService) smoothedHours(durations []float64) float64 {
	if len(durations) == 0 {
		return 0
	}
	smoothed := durations[0]
	for _, d := range durations[1:] {
		smoothed = s.stats.MovingAverage(smoothed, d, realstats.DefaultAlpha)
	}
	return smoothed
}
