package summarizer

import (
	"context"

	"notekeep/internal/usecase/article"
)

// Local is a deterministic summarizer that needs no network access.
// It produces the same word-count digest used when a remote provider fails,
// which makes it suitable for development and for deployments without an
// API key.
type Local struct{}

// NewLocal creates a new Local summarizer.
func NewLocal() *Local {
	return &Local{}
}

// Summarize returns a deterministic digest of the article built from its
// title, word count, and opening sentence. It never fails.
func (*Local) Summarize(_ context.Context, title, body string) (string, error) {
	return article.FallbackSummary(title, body), nil
}
