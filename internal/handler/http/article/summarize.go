package article

import (
	"net/http"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/pathutil"
	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

// SummarizeHandler generates and stores a summary for the article, then
// returns the updated article. The operation always succeeds for an owned
// article: provider failures are absorbed by the deterministic fallback.
// Calling it again overwrites the previous summary.
type SummarizeHandler struct{ Svc *artUC.Service }

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Summarize(r.Context(), auth.OwnerFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
