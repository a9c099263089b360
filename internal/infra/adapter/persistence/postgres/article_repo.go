package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"notekeep/internal/domain/entity"
	"notekeep/internal/pkg/search"
	"notekeep/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) ListByOwner(ctx context.Context, ownerID string, filter repository.ArticleFilter) ([]*entity.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, search.DefaultSearchTimeout)
	defer cancel()

	whereClause, args := repo.queryBuilder.BuildWhereClause(ownerID, filter)

	query := fmt.Sprintf(`
SELECT id, owner_id, title, body, tags, summary, created_at, updated_at
FROM articles
%s
ORDER BY updated_at DESC`, whereClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 50)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByOwner: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT id, owner_id, title, body, tags, summary, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (id, owner_id, title, body, tags, summary, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.OwnerID, article.Title, article.Body,
		pq.Array(article.Tags), nullableSummary(article.Summary),
		article.CreatedAt, article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles
SET title = $1, body = $2, tags = $3, summary = $4, updated_at = $5
WHERE id = $6`
	result, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Body, pq.Array(article.Tags),
		nullableSummary(article.Summary), article.UpdatedAt, article.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanArticle reads one article row. The summary column is nullable and
// maps to the empty string, which the entity treats as "no summary".
func scanArticle(row rowScanner) (*entity.Article, error) {
	var article entity.Article
	var summary sql.NullString
	if err := row.Scan(&article.ID, &article.OwnerID, &article.Title, &article.Body,
		pq.Array(&article.Tags), &summary, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return nil, err
	}
	article.Summary = summary.String
	if article.Tags == nil {
		article.Tags = []string{}
	}
	return &article, nil
}

// nullableSummary stores absent summaries as NULL rather than ''.
func nullableSummary(summary string) sql.NullString {
	return sql.NullString{String: summary, Valid: summary != ""}
}
