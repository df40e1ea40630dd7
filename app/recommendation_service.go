package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studytrack/adapters/llm"
	"studytrack/internal/errors"
	"studytrack/models"
	"studytrack/ports"

	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
)

// RecommendationService builds the advice prompt from the dashboard's
// own aggregates and asks the model for study recommendations. The
// numbers in the prompt are the DashboardSummary figures verbatim;
// numeric consistency with the UI is the contract here, not prose
// quality.
type RecommendationService struct {
	dashboard *DashboardService
	insights  *InsightsService
	client    ports.LLMClient
	model     string
	maxTokens int
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(dashboard *DashboardService, insights *InsightsService, client ports.LLMClient, model string, maxTokens int) *RecommendationService {
	return &RecommendationService{
		dashboard: dashboard,
		insights:  insights,
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}
}

// Recommend produces the AI advice panel for a user.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID) (models.RecommendationSet, error) {
	summary, err := s.dashboard.Summary(ctx, userID)
	if err != nil {
		return models.RecommendationSet{}, err
	}
	if summary.SessionCount == 0 {
		return models.RecommendationSet{}, errors.Validation("no sessions logged yet, nothing to recommend on")
	}

	ins, err := s.insights.Insights(ctx, userID)
	if err != nil {
		return models.RecommendationSet{}, err
	}

	prompt := BuildRecommendationPrompt(summary, ins)
	raw, err := s.client.ChatCompletion(ctx, s.model, prompt, s.maxTokens)
	if err != nil {
		return models.RecommendationSet{}, errors.WithCode(errors.CodeLLMError, err)
	}

	recs, err := llm.ParseRecommendations(raw)
	if err != nil {
		return models.RecommendationSet{}, errors.WithCode(errors.CodeLLMError, err)
	}

	for i := range recs {
		recs[i].BodyHTML = string(markdown.ToHTML([]byte(recs[i].Body), nil, nil))
	}

	return models.RecommendationSet{
		Recommendations: recs,
		PromptSummary:   summary,
		Model:           s.model,
		GeneratedAt:     time.Now(),
	}, nil
}

// BuildRecommendationPrompt formats the aggregates as the text block
// handed to the model. Values are printed exactly as computed (the core
// already fixed their precision), never re-rounded here.
func BuildRecommendationPrompt(summary models.DashboardSummary, ins models.Insights) string {
	var b strings.Builder

	b.WriteString("Here are my study statistics:\n\n")
	fmt.Fprintf(&b, "- Sessions logged: %d\n", summary.SessionCount)
	fmt.Fprintf(&b, "- Total hours studied: %v\n", summary.TotalHours)
	fmt.Fprintf(&b, "- Smoothed hours per session (EMA): %v\n", summary.SmoothedHours)
	fmt.Fprintf(&b, "- Latest session duration z-score: %v\n", summary.LatestZScore)

	for _, m := range models.Metrics() {
		ms, ok := summary.Metrics[m]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: mean %v, min %v, max %v, std dev %v\n",
			m, ms.Mean, ms.Infimum, ms.Supremum, ms.StdDev)
	}

	fmt.Fprintf(&b, "- Median session length: %v hours (Q1 %v, Q3 %v)\n",
		ins.MedianHours, ins.Q1Hours, ins.Q3Hours)
	fmt.Fprintf(&b, "- Mood/efficiency correlation: %.4f\n", ins.MoodEfficiencyCorr)
	fmt.Fprintf(&b, "- Focus/efficiency correlation: %.4f\n", ins.FocusEfficiencyCorr)

	b.WriteString(`
Based on these statistics, give me 3 specific recommendations to improve my studying.
Respond with a JSON array only, no surrounding text. Each element must have:
"title" (short), "body" (markdown, 2-3 sentences), "priority" (1 = act first).`)

	return b.String()
}
