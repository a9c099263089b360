package article

import (
	"net/http"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/pathutil"
	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), auth.OwnerFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
