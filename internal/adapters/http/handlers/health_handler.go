package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/recurring-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

const (
	statusOK        = "ok"
	statusUnhealthy = "unhealthy"
	statusReady     = "ready"
	statusNotReady  = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if the database and the
// optional cache pass their checks, 503 otherwise. Failure causes are logged,
// not returned, since driver errors can name hosts.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())
	logger := logging.FromContext(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			logger.WarnContext(r.Context(), "readiness check failed",
				slog.String("component", name),
				slog.Any("error", err),
			)
			checks[name] = statusUnhealthy
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
