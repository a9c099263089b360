package article

import (
	"net/http"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/pathutil"
	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), auth.OwnerFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
