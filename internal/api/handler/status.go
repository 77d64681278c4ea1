// Package handler provides the HTTP handlers for the status API.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/robloxstatus/robloxstatus/internal/api/models"
	"github.com/robloxstatus/robloxstatus/internal/api/response"
	"github.com/robloxstatus/robloxstatus/internal/status"
)

// StatusHandler serves the normalized Roblox status.
type StatusHandler struct {
	service *status.Service
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(service *status.Service) *StatusHandler {
	return &StatusHandler{service: service}
}

// GetStatus handles GET /status?tz=<timezone>&refresh=<true|false>.
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	timezone := r.URL.Query().Get("tz")
	if timezone == "" {
		timezone = status.DefaultTimezone
	}
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	report, err := h.service.GetStatus(r.Context(), timezone, forceRefresh)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewEnvelope(report))
}

func (h *StatusHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, status.ErrInvalidTimezone):
		valid := status.AllowedTimezones()
		response.Error(w, r, http.StatusBadRequest, models.CodeInvalidTimezone,
			"Invalid timezone. Valid options: "+strings.Join(valid, ", "),
			map[string]interface{}{"validTimezones": valid})

	case errors.Is(err, status.ErrUpstreamTimeout):
		response.Error(w, r, http.StatusGatewayTimeout, models.CodeGatewayTimeout,
			"Request timeout while fetching Roblox status", nil)

	default:
		response.Error(w, r, http.StatusBadGateway, models.CodeBadGateway,
			"Failed to fetch Roblox status from official source",
			map[string]interface{}{"originalError": err.Error()})
	}
}
