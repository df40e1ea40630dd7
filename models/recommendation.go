package models

import (
	"time"
)

// Recommendation is one AI-generated study suggestion.
type Recommendation struct {
	Title    string `json:"title"`
	Body     string `json:"body"`      // markdown as returned by the model
	BodyHTML string `json:"body_html"` // rendered for the dashboard panel
	Priority int    `json:"priority"`  // 1 = act first
}

// RecommendationSet is the full response for one advice request,
// together with the numbers the prompt was built from so the panel can
// show its sources.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	PromptSummary   DashboardSummary `json:"prompt_summary"`
	Model           string           `json:"model"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
