package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func testSession(hours float64, mood, focus int, efficiency float64, studiedAt time.Time) *StudySession {
	return NewStudySession(uuid.New(), "algorithms", hours, mood, focus, efficiency, studiedAt)
}

func TestStudySession_Validate(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mutate      func(*StudySession)
		expectError bool
	}{
		{name: "valid session", mutate: func(s *StudySession) {}, expectError: false},
		{name: "missing subject", mutate: func(s *StudySession) { s.Subject = "" }, expectError: true},
		{name: "zero duration", mutate: func(s *StudySession) { s.DurationHours = 0 }, expectError: true},
		{name: "duration over cap", mutate: func(s *StudySession) { s.DurationHours = 25 }, expectError: true},
		{name: "mood below range", mutate: func(s *StudySession) { s.Mood = 0 }, expectError: true},
		{name: "mood above range", mutate: func(s *StudySession) { s.Mood = 11 }, expectError: true},
		{name: "focus above range", mutate: func(s *StudySession) { s.Focus = 11 }, expectError: true},
		{name: "negative efficiency", mutate: func(s *StudySession) { s.Efficiency = -1 }, expectError: true},
		{name: "efficiency over 100", mutate: func(s *StudySession) { s.Efficiency = 101 }, expectError: true},
		{name: "zero studied_at", mutate: func(s *StudySession) { s.StudiedAt = time.Time{} }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession(1.5, 7, 8, 85, base)
			tt.mutate(s)
			err := s.Validate()
			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestExtractSeries(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	sessions := []*StudySession{
		testSession(1.5, 7, 8, 85, base),
		testSession(2.0, 5, 6, 70, base.Add(24*time.Hour)),
		testSession(0.5, 9, 9, 95, base.Add(48*time.Hour)),
	}

	durations := ExtractSeries(sessions, MetricDuration)
	want := []float64{1.5, 2.0, 0.5}
	for i := range want {
		if durations[i] != want[i] {
			t.Errorf("duration[%d] = %v, want %v", i, durations[i], want[i])
		}
	}

	moods := ExtractSeries(sessions, MetricMood)
	if moods[0] != 7 || moods[1] != 5 || moods[2] != 9 {
		t.Errorf("unexpected mood series: %v", moods)
	}

	if got := ExtractSeries(nil, MetricFocus); len(got) != 0 {
		t.Errorf("empty session list should extract empty series, got %v", got)
	}
}

func TestFilterByDateRange(t *testing.T) {
	base := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	sessions := []*StudySession{
		testSession(1, 5, 5, 50, base.AddDate(0, 0, -1)),
		testSession(2, 5, 5, 50, base),
		testSession(3, 5, 5, 50, base.AddDate(0, 0, 3)),
		testSession(4, 5, 5, 50, base.AddDate(0, 0, 7)), // exclusive upper bound
	}

	got := FilterByDateRange(sessions, base, base.AddDate(0, 0, 7))
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions in range, got %d", len(got))
	}
	if got[0].DurationHours != 2 || got[1].DurationHours != 3 {
		t.Errorf("wrong sessions kept: %v, %v", got[0].DurationHours, got[1].DurationHours)
	}
}

func TestFilterByMinEfficiency(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	sessions := []*StudySession{
		testSession(1, 5, 5, 40, base),
		testSession(2, 5, 5, 80, base),
		testSession(3, 5, 5, 80, base),
	}

	got := FilterByMinEfficiency(sessions, 80)
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions at threshold, got %d", len(got))
	}
	// Inclusive threshold, input order preserved.
	if got[0].DurationHours != 2 || got[1].DurationHours != 3 {
		t.Errorf("wrong order after filter: %v, %v", got[0].DurationHours, got[1].DurationHours)
	}
}

func TestSortByMetric(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	first := testSession(2.0, 5, 5, 50, base)
	second := testSession(0.5, 5, 5, 50, base)
	third := testSession(2.0, 5, 5, 50, base) // ties with first

	input := []*StudySession{first, second, third}
	got := SortByMetric(input, MetricDuration)

	if got[0] != second {
		t.Error("smallest duration should sort first")
	}
	// Stable: the tied pair keeps input order.
	if got[1] != first || got[2] != third {
		t.Error("tied durations should keep relative input order")
	}
	// Input untouched.
	if input[0] != first || input[1] != second || input[2] != third {
		t.Error("input slice was mutated")
	}
}
