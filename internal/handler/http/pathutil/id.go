// Package pathutil extracts and validates identifiers from URL paths.
package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ArticleID reads the {id} path value registered on the route and checks
// that it is a well-formed UUID. Rejecting malformed IDs here keeps junk
// out of the database query path.
func ArticleID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}
