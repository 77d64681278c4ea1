package handler

import (
	"net/http"
	"time"

	"github.com/robloxstatus/robloxstatus/internal/api/models"
	"github.com/robloxstatus/robloxstatus/internal/api/response"
	"github.com/robloxstatus/robloxstatus/internal/status"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	service   *status.Service
	startTime time.Time
}

// NewOpsHandler creates an OpsHandler.
func NewOpsHandler(version string, service *status.Service) *OpsHandler {
	return &OpsHandler{
		version:   version,
		service:   service,
		startTime: time.Now(),
	}
}

// Index handles GET / with a JSON description of the service.
func (h *OpsHandler) Index(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Index{
		Name:    "Roblox Status API",
		Version: h.version,
		Endpoints: map[string]string{
			"/status": "Current Roblox system status (query: tz, refresh)",
			"/health": "Liveness probe",
			"/ready":  "Readiness probe",
		},
	})
}

// HealthCheck handles GET /health. It never touches the pipeline.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status:    "healthy",
		Uptime:    int64(time.Since(h.startTime).Seconds()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Cache:     h.service.CacheBackend(),
		Version:   h.version,
	})
}

// ReadinessCheck handles GET /ready.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Readiness{Ready: true})
}
