package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"notekeep/internal/resilience/circuitbreaker"
	"notekeep/internal/resilience/retry"
	"notekeep/internal/utils/text"
)

const openAIProviderName = "openai"

// OpenAI generates article summaries through OpenAI's chat completion API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
	metrics        MetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics
// recording.
func NewOpenAI(apiKey string) *OpenAI {
	cfg := loadConfig(openai.GPT3Dot5Turbo)

	slog.Info("Initialized OpenAI summarizer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         cfg,
		metrics:        NewPrometheusMetrics(),
	}
}

// Summarize generates a 2-3 sentence summary of the article. It wraps the
// API call in retry and circuit breaker logic; transient failures are
// retried, sustained failures open the breaker and fail fast.
func (o *OpenAI) Summarize(ctx context.Context, title, body string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, title, body)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, title, body string) (string, error) {
	prompt := buildPrompt(title, body)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("provider", openAIProviderName),
		slog.String("model", o.config.Model),
		slog.Int("input_length", text.CountRunes(prompt)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.config.Model,
		MaxTokens:   o.config.MaxTokens,
		Temperature: o.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})

	duration := time.Since(start)
	o.metrics.RecordDuration(openAIProviderName, duration)

	if err != nil {
		o.metrics.RecordFailure(openAIProviderName)
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("provider", openAIProviderName),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// Guard against empty choices to avoid a panic on array access.
	if len(resp.Choices) == 0 {
		o.metrics.RecordFailure(openAIProviderName)
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.String("provider", openAIProviderName),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	summaryLength := text.CountRunes(summary)
	o.metrics.RecordLength(openAIProviderName, summaryLength)

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("provider", openAIProviderName),
		slog.Int("summary_length", summaryLength),
		slog.Duration("duration", duration))

	return summary, nil
}
