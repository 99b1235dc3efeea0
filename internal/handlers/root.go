package handlers

//go:generate mockgen -source=root.go -destination=root_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// HealthChecker reports whether the backing services answer.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// NewBannerHandler returns the service banner.
// @Summary Banner
// @Tags system
// @Produce json
// @Success 200 {object} models.BannerResponse
// @Router / [get]
func NewBannerHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.BannerResponse{
			Message: "Neko List API is running!",
			Version: version,
		})
	}
}

// NewHealthHandler returns the liveness endpoint.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.Check(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy"})
	}
}

// NewTestHandler returns a static smoke-test payload.
// @Summary Smoke test
// @Tags system
// @Produce json
// @Success 200 {object} models.TestResponse
// @Router /test [get]
func NewTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.TestResponse{
			Message: "Test endpoint working",
			Data:    "Hello from Neko List!",
		})
	}
}
