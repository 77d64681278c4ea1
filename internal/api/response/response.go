// Package response provides utilities for HTTP response writing.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/robloxstatus/robloxstatus/internal/api/middleware"
	"github.com/robloxstatus/robloxstatus/internal/api/models"
)

// JSON writes a JSON response with the given status code, including
// the X-Request-Id header for correlation.
func JSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes an APIError body with the given status code.
func Error(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, details interface{}) {
	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	apiErr := models.NewAPIError(code, message)
	if details != nil {
		apiErr.WithDetails(details)
	}
	apiErr.Write(w, statusCode)
}
