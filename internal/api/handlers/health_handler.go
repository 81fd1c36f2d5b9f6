package handlers

import (
	"context"
	"net/http"

	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler builds the probe handler; ping checks downstream readiness.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Liveness godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} types.APIResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, types.HealthStatus{Status: "ok"}, "")
}

// Readiness godoc
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} types.APIResponse
// @Failure 503 {object} types.APIResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			logger.L().Warn("readiness check failed", zap.Error(err))
			writeErrorStr(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}
	writeOK(w, http.StatusOK, types.HealthStatus{Status: "ready"}, "")
}
