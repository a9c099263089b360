package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"notekeep/internal/resilience/circuitbreaker"
	"notekeep/internal/resilience/retry"
	"notekeep/internal/utils/text"
)

const claudeProviderName = "claude"

// Claude generates article summaries through Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
	metrics        MetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics
// recording.
func NewClaude(apiKey string) *Claude {
	cfg := loadConfig(string(anthropic.ModelClaudeSonnet4_5_20250929))

	slog.Info("Initialized Claude summarizer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         cfg,
		metrics:        NewPrometheusMetrics(),
	}
}

// Summarize generates a 2-3 sentence summary of the article. It wraps the
// API call in retry and circuit breaker logic.
func (c *Claude) Summarize(ctx context.Context, title, body string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, title, body)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, title, body string) (string, error) {
	requestID := uuid.New().String()
	prompt := buildPrompt(title, body)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("provider", claudeProviderName),
		slog.String("request_id", requestID),
		slog.String("model", c.config.Model),
		slog.Int("input_length", text.CountRunes(prompt)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)
	c.metrics.RecordDuration(claudeProviderName, duration)

	if err != nil {
		c.metrics.RecordFailure(claudeProviderName)
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("provider", claudeProviderName),
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		c.metrics.RecordFailure(claudeProviderName)
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("provider", claudeProviderName),
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		c.metrics.RecordFailure(claudeProviderName)
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("provider", claudeProviderName),
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)
	c.metrics.RecordLength(claudeProviderName, summaryLength)

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("provider", claudeProviderName),
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Duration("duration", duration))

	return summary, nil
}
