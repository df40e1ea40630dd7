package app

import (
	"context"
	"math"

	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/google/uuid"
	montanaflynn "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// InsightsService computes the extended descriptive statistics that
// enrich the AI prompt and the history panel: quartiles of session
// length and how mood and focus track efficiency. These sit outside the
// core's fixed-rounding contract; the dashboard's own figures never
// come from here.
type InsightsService struct {
	sessions ports.SessionRepository
}

// NewInsightsService creates a new insights service.
func NewInsightsService(sessions ports.SessionRepository) *InsightsService {
	return &InsightsService{sessions: sessions}
}

// Insights computes the extended statistics over a user's full history.
func (s *InsightsService) Insights(ctx context.Context, userID uuid.UUID) (models.Insights, error) {
	sessions, err := s.sessions.ListSessions(ctx, userID, 0)
	if err != nil {
		return models.Insights{}, errors.Wrap(err, "failed to load sessions for insights")
	}
	return s.Compute(sessions), nil
}

// Compute derives the insights from an already-loaded session list.
// Sparse histories degrade gracefully: quantities that need more data
// than is available are left at zero.
func (s *InsightsService) Compute(sessions []*models.StudySession) models.Insights {
	var insights models.Insights
	if len(sessions) == 0 {
		return insights
	}

	durations := models.ExtractSeries(sessions, models.MetricDuration)
	if median, err := montanaflynn.Median(durations); err == nil {
		insights.MedianHours = median
	}
	if quartiles, err := montanaflynn.Quartile(durations); err == nil {
		insights.Q1Hours = quartiles.Q1
		insights.Q3Hours = quartiles.Q3
	}

	if len(sessions) >= 2 {
		efficiency := models.ExtractSeries(sessions, models.MetricEfficiency)
		insights.MoodEfficiencyCorr = correlation(models.ExtractSeries(sessions, models.MetricMood), efficiency)
		insights.FocusEfficiencyCorr = correlation(models.ExtractSeries(sessions, models.MetricFocus), efficiency)
	}

	return insights
}

// correlation is Pearson's r, with the degenerate constant-series case
// (NaN from a zero variance) mapped to 0.
func correlation(x, y []float64) float64 {
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
