// Package http provides HTTP handlers and middleware for the API surface:
// health and metrics endpoints, request logging, panic recovery, CORS, and
// rate limiting.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"notekeep/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthHandler reports overall service health. It pings the database with
// a short deadline so a wedged pool shows up as unhealthy rather than a
// hanging probe.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	status := "healthy"
	code := http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: err.Error()}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	} else {
		checks["database"] = CheckStatus{Status: "healthy"}
	}

	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}
