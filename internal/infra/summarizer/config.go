// Package summarizer provides AI-powered article summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns, plus a deterministic local implementation that needs no network.
// All implementations share the same prompt shape and observability surface.
package summarizer

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	// systemPrompt instructs the model on the expected summary style.
	systemPrompt = "You are a helpful assistant that creates concise, informative summaries of articles. Keep summaries to 2-3 sentences maximum."

	// maxInputChars caps the article body sent to a provider. Bodies beyond
	// this are truncated to stay well inside model token limits.
	maxInputChars = 10000

	// defaultMaxTokens bounds the response size. Summaries are 2-3
	// sentences, so 150 tokens is plenty.
	defaultMaxTokens = 150

	// defaultTemperature keeps summaries factual rather than creative.
	defaultTemperature = 0.3

	// defaultTimeout is the per-call deadline for provider APIs.
	defaultTimeout = 60 * time.Second
)

// Config holds the tunable parameters shared by the remote providers.
// Values are loaded from environment variables with fallback to defaults.
type Config struct {
	// Model is the provider-specific model identifier.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Temperature controls output randomness for providers that support it.
	Temperature float32

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// Validate checks the configuration fields and returns an error describing
// the first invalid one.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %v", c.Temperature)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// loadConfig builds a Config from environment variables, starting from the
// given default model.
//
// Environment variables:
//   - SUMMARIZER_MODEL: overrides the model identifier
//   - SUMMARIZER_MAX_TOKENS: response token cap (default: 150)
//
// Invalid values fall back to the default with a warning log.
func loadConfig(defaultModel string) Config {
	cfg := Config{
		Model:       defaultModel,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		Timeout:     defaultTimeout,
	}

	if model := os.Getenv("SUMMARIZER_MODEL"); model != "" {
		cfg.Model = model
	}

	if envTokens := os.Getenv("SUMMARIZER_MAX_TOKENS"); envTokens != "" {
		parsed, err := strconv.Atoi(envTokens)
		if err != nil || parsed <= 0 {
			slog.Warn("Invalid SUMMARIZER_MAX_TOKENS, using default",
				slog.String("value", envTokens),
				slog.Int("default", defaultMaxTokens))
		} else {
			cfg.MaxTokens = parsed
		}
	}

	return cfg
}

// buildPrompt constructs the user-facing prompt sent to remote providers.
// The body is truncated when it exceeds maxInputChars.
func buildPrompt(title, body string) string {
	if len(body) > maxInputChars {
		body = body[:maxInputChars] + "...\n(content truncated)"
	}
	return fmt.Sprintf("Please summarize this article:\n\nTitle: %s\n\nContent: %s", title, body)
}
