package article

import (
	"net/http"

	artUC "notekeep/internal/usecase/article"
)

// Register wires the article routes onto the mux. Every route here sits
// behind the auth middleware applied by the caller, so handlers can assume
// an owner identity in the context.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("GET /articles", ListHandler{svc})
	mux.Handle("POST /articles", CreateHandler{svc})

	mux.Handle("GET /articles/{id}", GetHandler{svc})
	mux.Handle("PUT /articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc})

	mux.Handle("POST /articles/{id}/summarize", SummarizeHandler{svc})
}
