package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Config holds LLM adapter configuration. The model and token budget
// are chosen per call by the caller, not fixed here.
type Config struct {
	APIKey        string        // OpenAI API key
	BaseURL       string        // Optional override (default: https://api.openai.com/v1)
	SystemContext string        // System message framing every request
	Temperature   float64       // 0.0-1.0, lower = more deterministic
	Timeout       time.Duration // Request timeout
}

// newLLMClient creates an LLM client based on config.
func newLLMClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}

	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &OpenAIClient{
		APIKey:        config.APIKey,
		BaseURL:       baseURL,
		SystemContext: config.SystemContext,
		Timeout:       config.Timeout,
		Temperature:   config.Temperature,
	}, nil
}

// MockLLMClient is a mock LLM client for testing.
type MockLLMClient struct {
	Response string // Set this for testing
	Error    error  // Set this to simulate errors
	Prompts  []string
}

func (m *MockLLMClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Error != nil {
		return "", m.Error
	}
	if m.Response != "" {
		return m.Response, nil
	}
	// Default mock response
	return `[
		{
			"title": "Protect your best hours",
			"body": "Your longest sessions cluster above your mean efficiency. Schedule the hardest subject into that window.",
			"priority": 1
		}
	]`, nil
}

// OpenAIClient implements the LLM port against the OpenAI
// chat-completions API.
type OpenAIClient struct {
	APIKey        string
	BaseURL       string
	SystemContext string
	Timeout       time.Duration
	Temperature   float64
}

func (c *OpenAIClient) ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error) {
	if strings.TrimSpace(model) == "" {
		return "", fmt.Errorf("missing model")
	}
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	system := c.SystemContext
	if system == "" {
		system = "You are a study coach. Output exactly what the user asks for."
	}

	// Chat Completions API (kept minimal: one system + one user message)
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	type reqBody struct {
		Model       string  `json:"model"`
		Messages    []msg   `json:"messages"`
		Temperature float64 `json:"temperature,omitempty"`
		MaxTokens   int     `json:"max_tokens,omitempty"`
	}
	body := reqBody{
		Model: model,
		Messages: []msg{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: c.Temperature,
		MaxTokens:   maxTokens,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	client := &http.Client{Timeout: c.Timeout}
	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d: %s", resp.StatusCode, string(respRaw))
	}

	type choice struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	type respBody struct {
		Choices []choice `json:"choices"`
	}
	var decoded respBody
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	return decoded.Choices[0].Message.Content, nil
}
