package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it can answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.LivenessResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. Any failing dependency, such as an
// open breaker on the todo API, answers 503 so the instance is taken out of
// rotation.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(r.Context()))
	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
