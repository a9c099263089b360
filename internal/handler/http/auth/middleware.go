// Package auth exposes the signup and login endpoints and the middleware
// that resolves the account behind each request.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"notekeep/internal/handler/http/respond"
	authservice "notekeep/internal/service/auth"
)

type ctxKey string

const ctxOwner ctxKey = "owner"

// OwnerFromContext returns the authenticated account ID stored by Authz.
// Handlers behind the middleware can rely on it being non-empty.
func OwnerFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxOwner).(string); ok {
		return id
	}
	return ""
}

// WithOwner stores an account ID in the context. Exported for handler tests.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxOwner, ownerID)
}

// Authz requires a valid bearer token on every request and stores the
// account ID it names in the request context. All methods are checked
// equally; there is no read-only bypass.
func Authz(svc *authservice.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, err := ownerFromHeader(svc, r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), ownerID)))
		})
	}
}

func ownerFromHeader(svc *authservice.Service, authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	ownerID, err := svc.VerifyToken(strings.TrimPrefix(authz, prefix))
	if err != nil {
		return "", authservice.ErrInvalidToken
	}
	return ownerID, nil
}
