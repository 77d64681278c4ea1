package models

import (
	"encoding/json"
	"net/http"
)

// Machine error codes returned in APIError bodies.
const (
	CodeInvalidTimezone   = "INVALID_TIMEZONE"
	CodeBadGateway        = "BAD_GATEWAY"
	CodeGatewayTimeout    = "GATEWAY_TIMEOUT"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_SERVER_ERROR"
)

// APIError is the JSON error body for every failure response: a
// machine code, a human message, and optional details. No failure is
// ever a bare status with an empty body.
type APIError struct {
	Code    string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewAPIError creates an error body.
func NewAPIError(code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// WithDetails attaches supporting details to the error body.
func (e *APIError) WithDetails(details interface{}) *APIError {
	e.Details = details
	return e
}

// Write writes the error body as JSON with the given HTTP status.
func (e *APIError) Write(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(e)
}
