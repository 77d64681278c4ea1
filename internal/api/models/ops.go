package models

// Health is the /health liveness body. It has no dependency on the
// status pipeline.
type Health struct {
	Status    string `json:"status"`
	Uptime    int64  `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Cache     string `json:"cache"`
	Version   string `json:"version"`
}

// Readiness is the /ready body.
type Readiness struct {
	Ready bool `json:"ready"`
}

// Index describes the service for GET /.
type Index struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
