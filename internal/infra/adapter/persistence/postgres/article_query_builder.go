// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"notekeep/internal/pkg/search"
	"notekeep/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for owner-scoped article queries.
// It uses PostgreSQL-specific features: ILIKE for case-insensitive search,
// the && array overlap operator for tags, and numbered placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds the WHERE clause and arguments for listing an
// owner's articles. The owner condition is always present; search and tag
// conditions are appended when the filter provides them and are combined
// with AND. A search keyword matches title or body. Tags match when the
// stored array overlaps the requested set, so any requested tag suffices.
func (qb *ArticleQueryBuilder) BuildWhereClause(ownerID string, filter repository.ArticleFilter) (clause string, args []interface{}) {
	conditions := []string{"owner_id = $1"}
	args = append(args, ownerID)
	paramIndex := 2

	if filter.Search != "" {
		escaped := search.EscapeILIKE(filter.Search)
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR body ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, escaped)
		paramIndex++
	}

	if len(filter.Tags) > 0 {
		conditions = append(conditions, fmt.Sprintf("tags && $%d", paramIndex))
		args = append(args, pq.Array(filter.Tags))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
