package article

import (
	"net/http"
	"strings"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/respond"
	"notekeep/internal/repository"
	artUC "notekeep/internal/usecase/article"
)

// ListHandler returns the caller's articles, newest first. Query parameters:
//
//	search - case-insensitive substring match on title or body
//	tags   - comma-separated tag names; an article matches if it carries
//	         any of them
//
// Both filters together narrow the result (AND).
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter := repository.ArticleFilter{
		Search: r.URL.Query().Get("search"),
		Tags:   splitTags(r.URL.Query().Get("tags")),
	}

	articles, err := h.Svc.List(r.Context(), auth.OwnerFromContext(r.Context()), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

// splitTags turns "go,web" into its parts, dropping empty entries so
// "go,,web" and a trailing comma behave sensibly.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
