// Package statusio fetches the Roblox status feed from its Status.io
// hosted status endpoint.
package statusio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/robloxstatus/robloxstatus/internal/provider/resilience"
	"github.com/robloxstatus/robloxstatus/internal/status"
)

const (
	// DefaultURL is Roblox's hosted Status.io summary feed.
	DefaultURL = "https://4277980205320394.hostedstatus.com/1.0/status/59db90dbcdeb2f04dadcf16d"

	// sourceLabel identifies this upstream in response metadata.
	sourceLabel = "status.roblox.com (Status.io)"

	userAgent = "RobloxStatusAPI/2.0"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Status.io feed client.
type ClientConfig struct {
	// URL is the feed endpoint (defaults to DefaultURL).
	URL string

	// HTTPClient is the HTTP client to use. If nil, a resilient
	// client is built from the remaining fields.
	HTTPClient HTTPDoer

	// Timeout for individual fetch attempts (default: 10s).
	Timeout time.Duration

	// MaxRetries after the first attempt (default: 3).
	MaxRetries uint64

	// RetryDelay is the base retry delay (default: 1s).
	RetryDelay time.Duration
}

// Client fetches the Status.io summary feed.
type Client struct {
	url        string
	httpClient HTTPDoer
}

// NewClient creates a Status.io feed client.
func NewClient(cfg ClientConfig) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:       "statusio",
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
	}

	return &Client{url: url, httpClient: httpClient}
}

// feedResponse is the feed document wrapper.
type feedResponse struct {
	Result status.Feed `json:"result"`
}

// Fetch retrieves the feed and returns it as a structured payload.
func (c *Client) Fetch(ctx context.Context) (status.RawPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return status.RawPayload{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return status.RawPayload{}, status.ClassifyFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status.RawPayload{}, fmt.Errorf("%w: unexpected status %d from status feed",
			status.ErrUpstreamUnreachable, resp.StatusCode)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return status.RawPayload{}, fmt.Errorf("%w: decode status feed: %v",
			status.ErrUpstreamUnreachable, err)
	}

	return status.RawPayload{Kind: status.PayloadStructured, Structured: &feed.Result}, nil
}

// Source labels the upstream for response metadata.
func (c *Client) Source() string {
	return sourceLabel
}
