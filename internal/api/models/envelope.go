// Package models defines the wire types for the status API.
package models

import "github.com/robloxstatus/robloxstatus/internal/status"

// Display metadata fixed on every envelope.
const (
	envelopeTitle = "Roblox System Status"
	envelopeIcon  = "📡"
)

// Envelope is the top-level /status response: cache provenance and
// display metadata prepended to the normalized Result fields.
type Envelope struct {
	Cached bool `json:"cached"`

	// CacheAge is the entry age in seconds, present only on hits.
	CacheAge *int64 `json:"cacheAge,omitempty"`

	Title string `json:"title"`
	Icon  string `json:"icon"`

	Status     status.StatusSummary   `json:"status"`
	Health     status.HealthSummary   `json:"health"`
	Components []status.Component     `json:"components"`
	Incidents  status.IncidentSummary `json:"incidents"`
	Updated    status.Timestamp       `json:"updated"`
	Meta       status.Meta            `json:"meta"`
}

// NewEnvelope wraps a pipeline report for the wire.
func NewEnvelope(report *status.Report) Envelope {
	env := Envelope{
		Cached:     report.Cached,
		Title:      envelopeTitle,
		Icon:       envelopeIcon,
		Status:     report.Result.Status,
		Health:     report.Result.Health,
		Components: report.Result.Components,
		Incidents:  report.Result.Incidents,
		Updated:    report.Result.Updated,
		Meta:       report.Result.Meta,
	}
	if report.Cached {
		age := report.CacheAge
		env.CacheAge = &age
	}
	return env
}
