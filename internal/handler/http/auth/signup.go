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

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userBody `json:"user"`
}

type userBody struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignupHandler registers a new account and returns a token for it, so a
// fresh client can start creating articles without a second round trip.
func SignupHandler(svc *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		user, token, err := svc.SignUp(r.Context(), req.Email, req.Name, req.Password)
		if err != nil {
			logger.Warn("signup failed",
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.FromUsecase(w, err, map[error]int{
				authservice.ErrEmailTaken: http.StatusConflict,
			})
			return
		}

		logger.Info("account created",
			slog.String("user_id", user.ID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		respond.JSON(w, http.StatusCreated, authResponse{
			Token: token,
			User:  userBody{ID: user.ID, Email: user.Email, Name: user.Name},
		})
	}
}
