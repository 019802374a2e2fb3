package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GargManasvini/mini-healthcare-platform/internal/dto"
	"github.com/GargManasvini/mini-healthcare-platform/internal/utils"
)

// StatusHandler handles service health probe requests
type StatusHandler struct {
	db *pgxpool.Pool
}

// NewStatusHandler creates a new StatusHandler instance
func NewStatusHandler(db *pgxpool.Pool) *StatusHandler {
	return &StatusHandler{db: db}
}

// HealthCheck handles basic health check (no database)
func (h *StatusHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *StatusHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes database connectivity)
func (h *StatusHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.StatusResponse{
			Status:  "degraded",
			Details: map[string]any{"db": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{
		Status:  "ready",
		Details: map[string]any{"db": "ok"},
	})
}
