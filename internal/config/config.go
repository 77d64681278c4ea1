// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Source modes for the upstream status provider.
const (
	SourcePage     = "page"
	SourceStatusIO = "statusio"
)

// Config holds the full service configuration.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	Cache     CacheConfig
	Scraper   ScraperConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	TTL          time.Duration
	RedisEnabled bool
	RedisURL     string
}

// ScraperConfig configures the upstream source fetcher.
type ScraperConfig struct {
	// Source selects the upstream shape: SourcePage scrapes the HTML
	// status page, SourceStatusIO polls the Status.io JSON feed.
	Source     string
	Timeout    time.Duration
	Retries    uint64
	RetryDelay time.Duration
}

// RateLimitConfig configures per-IP rate limiting on /status.
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// CORSConfig configures cross-origin access.
type CORSConfig struct {
	Origin string
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
}

// FromEnv builds a Config from environment variables, applying the
// documented defaults for anything unset.
func FromEnv() Config {
	retries, _ := strconv.ParseUint(getEnvOrDefault("SCRAPER_RETRIES", "3"), 10, 64)
	maxRequests, _ := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_MAX_REQUESTS", "100"))

	return Config{
		Env:      getEnvOrDefault("APP_ENV", "development"),
		Port:     getEnvOrDefault("APP_PORT", "8080"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Cache: CacheConfig{
			TTL:          millisOrDefault("CACHE_TTL_MS", 60*time.Second),
			RedisEnabled: os.Getenv("REDIS_ENABLED") == "true",
			RedisURL:     os.Getenv("REDIS_URL"),
		},
		Scraper: ScraperConfig{
			Source:     getEnvOrDefault("STATUS_SOURCE", SourcePage),
			Timeout:    millisOrDefault("SCRAPER_TIMEOUT_MS", 10*time.Second),
			Retries:    retries,
			RetryDelay: millisOrDefault("SCRAPER_RETRY_DELAY_MS", time.Second),
		},
		RateLimit: RateLimitConfig{
			Window:      millisOrDefault("RATE_LIMIT_WINDOW_MS", time.Minute),
			MaxRequests: maxRequests,
		},
		CORS: CORSConfig{
			Origin: getEnvOrDefault("CORS_ORIGIN", "*"),
		},
		Telemetry: TelemetryConfig{
			Enabled:      os.Getenv("OTEL_ENABLED") == "true",
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// millisOrDefault reads an integer millisecond value from the
// environment.
func millisOrDefault(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
