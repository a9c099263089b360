// Package repository declares the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"notekeep/internal/domain/entity"
)

// ArticleFilter contains optional criteria for listing a user's articles.
// Search matches title or body case-insensitively; Tags match when the
// article carries at least one of the given tags. Both present means both
// must hold.
type ArticleFilter struct {
	Search string
	Tags   []string
}

// IsZero reports whether no filter criteria are set.
func (f ArticleFilter) IsZero() bool {
	return f.Search == "" && len(f.Tags) == 0
}

// ArticleRepository provides durable storage for articles.
// All operations are atomic per single record.
type ArticleRepository interface {
	// ListByOwner returns the owner's articles matching the filter,
	// ordered by updated_at descending. An empty result is not an error.
	ListByOwner(ctx context.Context, ownerID string, filter ArticleFilter) ([]*entity.Article, error)
	// Get returns the article with the given ID, or nil when it does not
	// exist. Ownership is not checked here; callers enforce it.
	Get(ctx context.Context, id string) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article. Returns entity.ErrNotFound when no row
	// was deleted.
	Delete(ctx context.Context, id string) error
}
