package summarizer

import (
	"fmt"
	"log/slog"

	"notekeep/internal/usecase/article"
)

// Select builds the summarizer named by provider. When provider is empty it
// auto-selects: Claude when an Anthropic key is present, then OpenAI, then
// the local deterministic implementation.
func Select(provider, anthropicKey, openaiKey string) (article.Summarizer, error) {
	switch provider {
	case "claude":
		if anthropicKey == "" {
			return nil, fmt.Errorf("summarizer provider %q requires ANTHROPIC_API_KEY", provider)
		}
		return NewClaude(anthropicKey), nil
	case "openai":
		if openaiKey == "" {
			return nil, fmt.Errorf("summarizer provider %q requires OPENAI_API_KEY", provider)
		}
		return NewOpenAI(openaiKey), nil
	case "local":
		return NewLocal(), nil
	case "":
		// Fall through to auto-selection below.
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q (expected claude, openai, or local)", provider)
	}

	switch {
	case anthropicKey != "":
		return NewClaude(anthropicKey), nil
	case openaiKey != "":
		return NewOpenAI(openaiKey), nil
	default:
		slog.Info("No AI provider API key configured, using local summarizer")
		return NewLocal(), nil
	}
}
