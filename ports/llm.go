package ports

import "context"

// LLMClient interface for LLM providers.
type LLMClient interface {
	// ChatCompletion sends one system+user exchange and returns the
	// model's text response.
	ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}
