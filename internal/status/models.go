// Package status implements the Roblox status normalization pipeline:
// fetching the upstream status source, extracting component health
// signals, reducing them to a score and classification, and caching the
// normalized result.
package status

// State classifies service health.
type State string

// Health and status states, ordered from best to worst.
const (
	StateOperational State = "operational"
	StateDegraded    State = "degraded"
	StatePartial     State = "partial"
	StateOutage      State = "outage"
)

// Component is one monitored sub-service reported by the upstream
// status source.
type Component struct {
	// Name is the sub-service name, non-empty after trimming.
	Name string `json:"name"`

	// Category is an optional grouping label. The status page markup
	// has no grouping, so it is empty in markup mode.
	Category string `json:"category,omitempty"`

	// Status is the upstream's textual status label verbatim.
	Status string `json:"status"`

	// Weight is the component's health weight in [0, 100].
	Weight int `json:"weight"`
}

// HealthSummary is the aggregate health score over all components.
type HealthSummary struct {
	Percent int    `json:"percent"`
	Emoji   string `json:"emoji"`
	State   State  `json:"state"`
}

// StatusSummary is the top-line classification shown to callers. It is
// derived from health and incidents but kept separate from the
// four-state health grading: it only ever reports operational,
// degraded, or partial.
type StatusSummary struct {
	Text  string `json:"text"`
	Emoji string `json:"emoji"`
	State State  `json:"state"`
}

// IncidentSummary reports whether an active disruption was detected.
// Active is true whenever Count > 0; a page banner can set Active with
// Count still 0.
type IncidentSummary struct {
	Active  bool   `json:"active"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// Timestamp renders one instant in the caller's timezone alongside its
// canonical UTC representations.
type Timestamp struct {
	// Time is the local wall clock, "HH:mm".
	Time string `json:"time"`

	// Timezone is the display label for the zone.
	Timezone string `json:"timezone"`

	// Full is the local datetime, "YYYY-MM-DD HH:mm:ss".
	Full string `json:"full"`

	// ISO is the UTC instant in ISO-8601 with milliseconds.
	ISO string `json:"iso"`

	// Unix is the UTC epoch in seconds.
	Unix int64 `json:"unix"`
}

// Meta describes where and how the snapshot was obtained.
type Meta struct {
	Official bool   `json:"official"`
	Source   string `json:"source"`

	// ScrapeDuration is the fetch+normalize wall time in milliseconds.
	ScrapeDuration int64 `json:"scrapeDuration,omitempty"`
}

// Result is one normalized status snapshot. It is immutable once
// built; the only exception is the Updated block, which is recomputed
// per request when a cached Result is served.
type Result struct {
	Status     StatusSummary   `json:"status"`
	Health     HealthSummary   `json:"health"`
	Components []Component     `json:"components"`
	Incidents  IncidentSummary `json:"incidents"`
	Updated    Timestamp       `json:"updated"`
	Meta       Meta            `json:"meta"`
}

// Report wraps a Result with its cache provenance for the response
// layer.
type Report struct {
	Result Result
	Cached bool

	// CacheAge is the entry age in seconds, meaningful only when
	// Cached is true.
	CacheAge int64
}
