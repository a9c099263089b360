package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"notekeep/internal/handler/http/auth"
	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

type createRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	article, err := h.Svc.Create(r.Context(), auth.OwnerFromContext(r.Context()), artUC.CreateInput{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(article))
}
