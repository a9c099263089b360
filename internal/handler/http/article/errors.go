package article

import (
	"net/http"

	"notekeep/internal/handler/http/respond"
	artUC "notekeep/internal/usecase/article"
)

// statuses maps service sentinels to HTTP codes. Shared by every handler in
// the package so the surface stays consistent.
var statuses = map[error]int{
	artUC.ErrInvalidArticleID: http.StatusBadRequest,
	artUC.ErrArticleNotFound:  http.StatusNotFound,
	artUC.ErrUnauthorized:     http.StatusUnauthorized,
}

func writeError(w http.ResponseWriter, err error) {
	respond.FromUsecase(w, err, statuses)
}
