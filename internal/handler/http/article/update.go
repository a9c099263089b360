package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/pathutil"
	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

// updateRequest uses pointers so an omitted field can be told apart from an
// explicitly empty one. Omitted fields keep their current value.
type updateRequest struct {
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  []string `json:"tags"`
}

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ArticleID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	article, err := h.Svc.Update(r.Context(), auth.OwnerFromContext(r.Context()), id, artUC.UpdateInput{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
