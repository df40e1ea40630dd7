package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsCompute(t *testing.T) {
	repo := &memRepo{}
	userID := uuid.New()
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	// Mood rises with efficiency, focus falls: correlations should have
	// opposite signs.
	seedSession(repo, userID, 1.0, 3, 9, 50, base)
	seedSession(repo, userID, 2.0, 5, 7, 65, base.Add(24*time.Hour))
	seedSession(repo, userID, 3.0, 7, 5, 80, base.Add(48*time.Hour))
	seedSession(repo, userID, 4.0, 9, 3, 95, base.Add(72*time.Hour))

	svc := NewInsightsService(repo)
	ins, err := svc.Insights(context.Background(), userID)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, ins.MedianHours, 1e-9)
	assert.Greater(t, ins.MoodEfficiencyCorr, 0.99)
	assert.Less(t, ins.FocusEfficiencyCorr, -0.99)
	assert.LessOrEqual(t, ins.Q1Hours, ins.MedianHours)
	assert.LessOrEqual(t, ins.MedianHours, ins.Q3Hours)
}

func TestInsightsDegenerateInputs(t *testing.T) {
	svc := NewInsightsService(&memRepo{})

	// No sessions: everything zero, no error.
	ins, err := svc.Insights(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, ins)

	// Constant efficiency: correlation is undefined, mapped to 0.
	repo := &memRepo{}
	userID := uuid.New()
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	seedSession(repo, userID, 1.0, 3, 4, 80, base)
	seedSession(repo, userID, 2.0, 7, 6, 80, base.Add(24*time.Hour))

	ins, err = NewInsightsService(repo).Insights(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, ins.MoodEfficiencyCorr)
	assert.Zero(t, ins.FocusEfficiencyCorr)
}
