// Package statuspage fetches the public Roblox status page markup.
package statuspage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/robloxstatus/robloxstatus/internal/provider/resilience"
	"github.com/robloxstatus/robloxstatus/internal/status"
)

const (
	// DefaultURL is the public Roblox status page.
	DefaultURL = "https://status.roblox.com/"

	userAgent = "RobloxStatusAPI/2.0"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the status page client.
type ClientConfig struct {
	// URL is the page to scrape (defaults to DefaultURL).
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

// Client scrapes the Roblox status page.
type Client struct {
	url        string
	httpClient HTTPDoer
}

// NewClient creates a status page client.
func NewClient(cfg ClientConfig) *Client {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:       "statuspage",
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
	}

	return &Client{
		url:        strings.TrimSpace(url),
		httpClient: httpClient,
	}
}

// Fetch retrieves the status page and returns it as a markup payload.
func (c *Client) Fetch(ctx context.Context) (status.RawPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return status.RawPayload{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return status.RawPayload{}, status.ClassifyFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status.RawPayload{}, fmt.Errorf("%w: unexpected status %d from status page",
			status.ErrUpstreamUnreachable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return status.RawPayload{}, status.ClassifyFetchError(err)
	}

	return status.RawPayload{Kind: status.PayloadMarkup, Markup: string(body)}, nil
}

// Source labels the upstream for response metadata.
func (c *Client) Source() string {
	return c.url
}
