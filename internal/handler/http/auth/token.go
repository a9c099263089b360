package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"notekeep/internal/handler/http/requestid"
	"notekeep/internal/handler/http/respond"
	authservice "notekeep/internal/service/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenHandler authenticates an existing account and issues a JWT.
// Failures are logged but the response never distinguishes an unknown
// email from a wrong password.
func TokenHandler(svc *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		user, token, err := svc.LogIn(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.Warn("authentication failed",
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.FromUsecase(w, err, map[error]int{
				authservice.ErrInvalidCredentials: http.StatusUnauthorized,
			})
			return
		}

		logger.Info("authentication succeeded",
			slog.String("user_id", user.ID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		respond.JSON(w, http.StatusOK, authResponse{
			Token: token,
			User:  userBody{ID: user.ID, Email: user.Email, Name: user.Name},
		})
	}
}
