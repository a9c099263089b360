// Package article provides use cases for managing a user's articles.
// It implements the business logic for listing, creating, updating, deleting,
// and summarizing articles, enforcing ownership and delegating persistence to
// the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article does not exist
	// or does not belong to the caller. The two cases are deliberately
	// indistinguishable so that the existence of other users' articles is
	// never confirmed.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrUnauthorized indicates that no owner identity was resolved for the
	// request. Every operation fails with this error before touching the
	// repository.
	ErrUnauthorized = errors.New("unauthorized")
)
