package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Metric bounds for a study session. Duration is open-ended upward but
// capped for sanity; mood and focus are 1-10 scales, efficiency 0-100.
const (
	MaxDurationHours = 24.0
	MinScore         = 1
	MaxScore         = 10
	MaxEfficiency    = 100.0
)

// StudySession is one logged study block: what was studied, for how
// long, and how it felt.
type StudySession struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Subject       string    `json:"subject" db:"subject"`
	DurationHours float64   `json:"duration_hours" db:"duration_hours"`
	Mood          int       `json:"mood" db:"mood"`
	Focus         int       `json:"focus" db:"focus"`
	Efficiency    float64   `json:"efficiency" db:"efficiency"`
	Notes         string    `json:"notes,omitempty" db:"notes"`
	StudiedAt     time.Time `json:"studied_at" db:"studied_at"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// NewStudySession creates a session with fresh identity and timestamps.
func NewStudySession(userID uuid.UUID, subject string, durationHours float64, mood, focus int, efficiency float64, studiedAt time.Time) *StudySession {
	now := time.Now()
	return &StudySession{
		ID:            uuid.New(),
		UserID:        userID,
		Subject:       subject,
		DurationHours: durationHours,
		Mood:          mood,
		Focus:         focus,
		Efficiency:    efficiency,
		StudiedAt:     studiedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate checks the session's metrics against their defined ranges.
func (s *StudySession) Validate() error {
	if s.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if s.DurationHours <= 0 || s.DurationHours > MaxDurationHours {
		return fmt.Errorf("duration must be in (0, %v] hours, got %v", MaxDurationHours, s.DurationHours)
	}
	if s.Mood < MinScore || s.Mood > MaxScore {
		return fmt.Errorf("mood must be in [%d, %d], got %d", MinScore, MaxScore, s.Mood)
	}
	if s.Focus < MinScore || s.Focus > MaxScore {
		return fmt.Errorf("focus must be in [%d, %d], got %d", MinScore, MaxScore, s.Focus)
	}
	if s.Efficiency < 0 || s.Efficiency > MaxEfficiency {
		return fmt.Errorf("efficiency must be in [0, %v], got %v", MaxEfficiency, s.Efficiency)
	}
	if s.StudiedAt.IsZero() {
		return fmt.Errorf("studied_at is required")
	}
	return nil
}

// Metric identifies one numeric series extractable from sessions.
type Metric string

const (
	MetricDuration   Metric = "duration"
	MetricMood       Metric = "mood"
	MetricFocus      Metric = "focus"
	MetricEfficiency Metric = "efficiency"
)

// Metrics lists every extractable metric in display order.
func Metrics() []Metric {
	return []Metric{MetricDuration, MetricMood, MetricFocus, MetricEfficiency}
}

// MetricValue returns the session's value for the given metric.
func (s *StudySession) MetricValue(m Metric) float64 {
	switch m {
	case MetricDuration:
		return s.DurationHours
	case MetricMood:
		return float64(s.Mood)
	case MetricFocus:
		return float64(s.Focus)
	case MetricEfficiency:
		return s.Efficiency
	default:
		return 0
	}
}

// ExtractSeries pulls one metric out of a session list as a plain
// float64 series, in the list's order, ready for the statistics core.
func ExtractSeries(sessions []*StudySession, m Metric) []float64 {
	series := make([]float64, len(sessions))
	for i, s := range sessions {
		series[i] = s.MetricValue(m)
	}
	return series
}

// FilterByDateRange keeps sessions with from ≤ StudiedAt < to,
// preserving input order.
func FilterByDateRange(sessions []*StudySession, from, to time.Time) []*StudySession {
	filtered := make([]*StudySession, 0, len(sessions))
	for _, s := range sessions {
		if !s.StudiedAt.Before(from) && s.StudiedAt.Before(to) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// FilterByMinEfficiency keeps sessions meeting an efficiency threshold,
// preserving input order.
func FilterByMinEfficiency(sessions []*StudySession, min float64) []*StudySession {
	filtered := make([]*StudySession, 0, len(sessions))
	for _, s := range sessions {
		if s.Efficiency >= min {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// SortByMetric returns a new slice of sessions in ascending order of
// the given metric. The sort is stable (ties keep input order), which
// is the same comparison contract realstats.Sort gives plain series.
// The input slice is not mutated.
func SortByMetric(sessions []*StudySession, m Metric) []*StudySession {
	sorted := make([]*StudySession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MetricValue(m) < sorted[j].MetricValue(m)
	})
	return sorted
}
