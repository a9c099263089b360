// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// User, along with their validation rules and domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// Article represents a single note/article owned by exactly one user.
// Summary is empty until a summary has been generated for the article.
type Article struct {
	ID        string
	OwnerID   string
	Title     string
	Body      string
	Tags      []string
	Summary   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSummary reports whether a summary has been generated for the article.
func (a *Article) HasSummary() bool {
	return a.Summary != ""
}

// NormalizeTags lowercases and trims tags, drops empty entries, and collapses
// case-insensitive duplicates while preserving first-occurrence order.
// A nil or empty input yields an empty (non-nil) slice.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		norm := strings.ToLower(strings.TrimSpace(t))
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

// HasAnyTag reports whether the article carries at least one of the given
// tags. The given tags are expected to be normalized already.
func (a *Article) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range a.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
