package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"notekeep/internal/domain/entity"
	"notekeep/internal/repository"
	"notekeep/internal/utils/text"
)

// Summarizer produces a short natural-language summary for an article.
// Implementations may call a remote model or compute the summary locally;
// the service treats any failure uniformly and substitutes a deterministic
// fallback, so Summarize never needs to distinguish failure subtypes.
type Summarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title string
	Body  string
	Tags  []string
}

// UpdateInput represents a partial update of an existing article.
// Nil fields are left unchanged.
type UpdateInput struct {
	Title *string
	Body  *string
	Tags  []string
}

// Service orchestrates article operations: it validates input, enforces
// ownership, and coordinates the repository and the summarizer.
// It holds no mutable state of its own; all durable state lives in the
// repository.
type Service struct {
	repo       repository.ArticleRepository
	summarizer Summarizer
}

// NewService wires a Service with its dependencies. Both are required; the
// summarizer may be a local implementation when no remote provider is
// configured.
func NewService(repo repository.ArticleRepository, summarizer Summarizer) *Service {
	return &Service{repo: repo, summarizer: summarizer}
}

// List returns the owner's articles matching the filter, most recently
// updated first. Filter text is trimmed and filter tags are normalized the
// same way article tags are. An empty result is returned as an empty slice.
func (s *Service) List(ctx context.Context, ownerID string, filter repository.ArticleFilter) ([]*entity.Article, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Tags = entity.NormalizeTags(filter.Tags)

	articles, err := s.repo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Get returns a single article after the ownership check.
// Returns ErrArticleNotFound for missing and foreign-owned articles alike.
func (s *Service) Get(ctx context.Context, ownerID, articleID string) (*entity.Article, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	return s.getOwned(ctx, ownerID, articleID)
}

// Create validates the input and persists a new article. Title and body must
// be non-empty after trimming; tags are normalized to lowercase and
// deduplicated. The created article never carries a summary.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*entity.Article, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)

	var errs entity.ValidationErrors
	if title == "" {
		errs = append(errs, &entity.ValidationError{Field: "title", Message: "is required"})
	}
	if body == "" {
		errs = append(errs, &entity.ValidationError{Field: "body", Message: "is required"})
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	art := &entity.Article{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Body:      body,
		Tags:      entity.NormalizeTags(in.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update applies a partial update to an owned article. Provided title/body
// must be non-empty after trimming. The summary is never touched here;
// regeneration goes through Summarize.
func (s *Service) Update(ctx context.Context, ownerID, articleID string, in UpdateInput) (*entity.Article, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	art, err := s.getOwned(ctx, ownerID, articleID)
	if err != nil {
		return nil, err
	}

	var errs entity.ValidationErrors
	var title, body string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		if title == "" {
			errs = append(errs, &entity.ValidationError{Field: "title", Message: "cannot be empty"})
		}
	}
	if in.Body != nil {
		body = strings.TrimSpace(*in.Body)
		if body == "" {
			errs = append(errs, &entity.ValidationError{Field: "body", Message: "cannot be empty"})
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if in.Title != nil {
		art.Title = title
	}
	if in.Body != nil {
		art.Body = body
	}
	if in.Tags != nil {
		art.Tags = entity.NormalizeTags(in.Tags)
	}
	art.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete permanently removes an owned article. There is no soft delete; a
// second Delete for the same ID fails with ErrArticleNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, articleID string) error {
	if ownerID == "" {
		return ErrUnauthorized
	}

	if _, err := s.getOwned(ctx, ownerID, articleID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, articleID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Summarize generates a summary for an owned article and persists it,
// overwriting any previous summary and refreshing UpdatedAt.
//
// Provider failures never fail the operation: any error (or blank output)
// from the summarizer is replaced with a deterministic fallback derived from
// the article itself, so the caller always gets a non-empty summary when the
// article exists and is theirs.
func (s *Service) Summarize(ctx context.Context, ownerID, articleID string) (*entity.Article, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}

	art, err := s.getOwned(ctx, ownerID, articleID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, art.Title, art.Body)
	if err != nil || strings.TrimSpace(summary) == "" {
		if err != nil {
			slog.WarnContext(ctx, "summarizer failed, using fallback summary",
				slog.String("article_id", art.ID),
				slog.Any("error", err))
		}
		summary = FallbackSummary(art.Title, art.Body)
	}

	art.Summary = summary
	art.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("persist summary: %w", err)
	}
	return art, nil
}

// FallbackSummary computes the deterministic placeholder summary used when
// the summarization provider is unavailable: the word count of the body plus
// its first sentence.
func FallbackSummary(title, body string) string {
	return fmt.Sprintf("This article titled %q contains approximately %d words. %s",
		title, text.CountWords(body), text.FirstSentence(body))
}

// getOwned fetches an article and verifies ownership. Missing articles and
// articles owned by someone else both come back as ErrArticleNotFound.
func (s *Service) getOwned(ctx context.Context, ownerID, articleID string) (*entity.Article, error) {
	if articleID == "" {
		return nil, ErrInvalidArticleID
	}

	art, err := s.repo.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil || art.OwnerID != ownerID {
		return nil, ErrArticleNotFound
	}
	return art, nil
}
