package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/robloxstatus/robloxstatus/internal/api/models"
)

// RateLimitConfig holds configuration for rate limiting.
type RateLimitConfig struct {
	// MaxRequests per window.
	MaxRequests int

	// Window duration.
	Window time.Duration
}

// DefaultRateLimit is the fallback when configuration is missing or
// invalid: 100 requests per minute per IP.
var DefaultRateLimit = RateLimitConfig{
	MaxRequests: 100,
	Window:      time.Minute,
}

// RateLimitByIP creates a per-IP rate limiter. The client IP comes
// from chi's RealIP middleware, so X-Forwarded-For is honoured behind
// a proxy.
func RateLimitByIP(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.MaxRequests <= 0 || cfg.Window <= 0 {
		cfg = DefaultRateLimit
	}

	return httprate.Limit(
		cfg.MaxRequests,
		cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(rateLimitExceededHandler(cfg)),
	)
}

func rateLimitExceededHandler(cfg RateLimitConfig) http.HandlerFunc {
	retryAfter := int(cfg.Window.Seconds())
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		models.NewAPIError(models.CodeRateLimitExceeded, "Too many requests, please try again later").
			Write(w, http.StatusTooManyRequests)
	}
}
