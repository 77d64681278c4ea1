package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// RedisCache stores entries in Redis so multiple replicas share one
// cache. Entries carry their own storage stamp; the key TTL is a
// backstop that lets Redis reclaim stale keys on its own.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache connects to Redis and verifies the connection with a
// ping before returning.
func NewRedisCache(url string, ttl time.Duration, logger zerolog.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl, logger: logger}, nil
}

// Get returns the entry for key if present and fresh. Transport and
// decode failures are logged and read as misses so a flaky Redis
// degrades to more upstream fetches, never to request failures.
func (c *RedisCache) Get(ctx context.Context, key string) (*CacheEntry, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Error().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("cache entry corrupt")
		return nil, false
	}

	if entry.Age(time.Now()) >= c.ttl {
		return nil, false
	}
	return &entry, true
}

// Set stores result under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, result Result) {
	entry := CacheEntry{Result: result, StoredAt: time.Now().UnixMilli()}
	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("cache entry marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Backend identifies this backend.
func (c *RedisCache) Backend() string { return "redis" }

// Close releases the Redis connection.
func (c *RedisCache) Close() error { return c.client.Close() }
