package handlers

import (
	"net/http"

	"github.com/pratik-mahalle/userboard/internal/domain/user"
	"github.com/pratik-mahalle/userboard/internal/pkg/errors"
	"github.com/pratik-mahalle/userboard/internal/pkg/logger"
	"github.com/pratik-mahalle/userboard/internal/pkg/utils"
)

// StatusReporter reports the load state of the user collection
type StatusReporter interface {
	Status() user.Status
}

// HealthHandler handles health check requests
type HealthHandler struct {
	users  StatusReporter
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(users StatusReporter, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		users:  users,
		logger: log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Ready once the initial user list has loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	st := h.users.Status()

	switch st.State {
	case user.LoadStateReady:
		utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"status": "ready",
			"users":  st.Count,
		})
	case user.LoadStateError:
		h.logger.With("load_error", st.Error).Debug("Readiness check failed")
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, errors.ErrCodeLoadFailure, "Failed to load users from API")
	default:
		h.logger.Debug("Readiness check while users are loading")
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, errors.ErrCodeServiceUnavailable, "Users are still loading")
	}
}
