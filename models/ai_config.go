package models

import (
	"os"
	"strconv"
)

// AIConfig holds the settings for the recommendation model call.
type AIConfig struct {
	OpenAIKey     string
	OpenAIModel   string
	SystemContext string
	MaxTokens     int
	Temperature   float64
}

// DefaultAIConfig returns sensible defaults, overridable from the
// environment.
func DefaultAIConfig() *AIConfig {
	config := &AIConfig{
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   os.Getenv("LLM_MODEL"),
		SystemContext: "You are a study coach who gives short, specific advice grounded in the statistics you are shown.",
		MaxTokens:     2000,
		Temperature:   0.2,
	}
	if config.OpenAIModel == "" {
		config.OpenAIModel = "gpt-4.1-mini"
	}

	if maxTokensStr := os.Getenv("LLM_MAX_TOKENS"); maxTokensStr != "" {
		if maxTokens, err := strconv.Atoi(maxTokensStr); err == nil {
			config.MaxTokens = maxTokens
		}
	}

	if tempStr := os.Getenv("LLM_TEMPERATURE"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil {
			config.Temperature = temp
		}
	}

	return config
}
