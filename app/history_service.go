package app

import (
	"context"
	"sort"
	"time"

	"studytrack/domain/realstats"
	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/google/uuid"
)

// HistoryService produces the week-by-week history panel using the
// same aggregate functions and rounding as the dashboard, so a week's
// mean here always matches what the dashboard would show for that week.
type HistoryService struct {
	sessions ports.SessionRepository
	stats    *realstats.Instrumented
}

// NewHistoryService creates a new history service.
func NewHistoryService(sessions ports.SessionRepository, observer realstats.Observer) *HistoryService {
	return &HistoryService{
		sessions: sessions,
		stats:    realstats.NewInstrumented(observer),
	}
}

// WeeklyHistory buckets a user's sessions in [from, to) into calendar
// weeks (Monday 00:00 UTC) and aggregates each bucket. Weeks are
// returned oldest first; weeks with no sessions are omitted.
func (s *HistoryService) WeeklyHistory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.WeeklySummary, error) {
	sessions, err := s.sessions.ListSessionsByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sessions for history")
	}
	return s.Bucket(sessions), nil
}

// Bucket groups an already-loaded session list by week and aggregates
// each group.
func (s *HistoryService) Bucket(sessions []*models.StudySession) []models.WeeklySummary {
	buckets := make(map[time.Time][]*models.StudySession)
	for _, sess := range sessions {
		week := weekStart(sess.StudiedAt)
		buckets[week] = append(buckets[week], sess)
	}

	weeks := make([]models.WeeklySummary, 0, len(buckets))
	for start, group := range buckets {
		durations := models.ExtractSeries(group, models.MetricDuration)
		weeks = append(weeks, models.WeeklySummary{
			WeekStart:    start,
			SessionCount: len(group),
			TotalHours:   s.stats.Integrate(durations, realstats.DefaultInterval),
			MeanHours:    s.stats.Mean(durations),
			MeanFocus:    s.stats.Mean(models.ExtractSeries(group, models.MetricFocus)),
			MeanMood:     s.stats.Mean(models.ExtractSeries(group, models.MetricMood)),
			BestDay:      s.stats.Supremum(dailyTotals(group)),
			WorstDay:     s.stats.Infimum(dailyTotals(group)),
		})
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// dailyTotals sums hours per calendar day within one week's sessions,
// in day order.
func dailyTotals(sessions []*models.StudySession) []float64 {
	byDay := make(map[time.Time][]float64)
	for _, s := range sessions {
		day := s.StudiedAt.UTC().Truncate(24 * time.Hour)
		byDay[day] = append(byDay[day], s.DurationHours)
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	totals := make([]float64, len(days))
	for i, day := range days {
		totals[i] = realstats.Integrate(byDay[day], realstats.DefaultInterval)
	}
	return totals
}

// weekStart returns the Monday 00:00 UTC of the week containing t.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	// Go's Weekday makes Sunday 0; shift so Monday is the bucket start.
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -offset)
}
