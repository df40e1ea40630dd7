package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/models"
	"studytrack/ports"
)

// NewClient creates the production LLM client for the recommendation
// service.
func NewClient(config Config) (ports.LLMClient, error) {
	return newLLMClient(config)
}

// ParseRecommendations decodes the model's JSON response into
// recommendations. Models occasionally wrap JSON in a markdown code
// fence; that wrapping is stripped before decoding.
func ParseRecommendations(raw string) ([]models.Recommendation, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		return nil, fmt.Errorf("parse recommendations: %w", err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("model returned no recommendations")
	}
	for i := range recs {
		if recs[i].Priority == 0 {
			recs[i].Priority = i + 1
		}
	}
	return recs, nil
}
