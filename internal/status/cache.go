package status

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCacheTTL is the cache validity window when none is configured.
const DefaultCacheTTL = 60 * time.Second

// CacheEntry is one stored Result stamped with its storage instant.
type CacheEntry struct {
	Result   Result `json:"result"`
	StoredAt int64  `json:"storedAt"`
}

// Age returns how long ago the entry was stored.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(e.StoredAt))
}

// Cache stores the last successful Result per timezone key. Get
// reports a miss once the entry's age reaches the TTL (lazy expiry, no
// background sweep); Set overwrites unconditionally, stamping the
// current time. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, bool)
	Set(ctx context.Context, key string, result Result)

	// Backend names the active backend for the health endpoint.
	Backend() string
}

// NewCache selects the cache backend. Redis is attempted once at
// construction when enabled; on failure the service falls back to the
// in-process store, logging the downgrade a single time rather than
// per operation.
func NewCache(redisEnabled bool, redisURL string, ttl time.Duration, logger zerolog.Logger) Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	if redisEnabled && redisURL != "" {
		cache, err := NewRedisCache(redisURL, ttl, logger)
		if err == nil {
			logger.Info().Msg("redis cache connected")
			return cache
		}
		logger.Warn().Err(err).Msg("redis connection failed, falling back to memory cache")
	}

	return NewMemoryCache(ttl)
}
