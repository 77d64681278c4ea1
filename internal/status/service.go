package status

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/robloxstatus/robloxstatus/internal/status"

// cacheKeyPrefix namespaces cache keys; the full key is the prefix plus
// the timezone name.
const cacheKeyPrefix = "roblox:status:"

// Source fetches one raw payload from the upstream status provider.
type Source interface {
	Fetch(ctx context.Context) (RawPayload, error)

	// Source labels the upstream for the response metadata.
	Source() string
}

// ServiceConfig holds configuration for the status service.
type ServiceConfig struct {
	Source Source
	Cache  Cache
	Logger zerolog.Logger
}

// Service runs the fetch, extract, reduce, cache pipeline. It is safe
// for concurrent use; concurrent cache misses each fetch upstream
// independently (no single-flight coalescing).
type Service struct {
	source Source
	cache  Cache
	logger zerolog.Logger

	fetchDuration metric.Int64Histogram
	cacheHits     metric.Int64Counter
	cacheMisses   metric.Int64Counter
}

// NewService creates a status service with its metric instruments.
func NewService(cfg ServiceConfig) (*Service, error) {
	meter := otel.Meter(meterName)

	fetchDuration, err := meter.Int64Histogram(
		"status.fetch.duration",
		metric.WithDescription("Duration of upstream status fetches in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"status.cache.hits",
		metric.WithDescription("Status requests served from cache"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"status.cache.misses",
		metric.WithDescription("Status requests that required an upstream fetch"),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		source:        cfg.Source,
		cache:         cfg.Cache,
		logger:        cfg.Logger,
		fetchDuration: fetchDuration,
		cacheHits:     cacheHits,
		cacheMisses:   cacheMisses,
	}, nil
}

// GetStatus returns the normalized status for the given timezone,
// serving from cache when a fresh entry exists. forceRefresh bypasses
// the cache read entirely and always polls the upstream; the fresh
// result is stored either way.
func (s *Service) GetStatus(ctx context.Context, timezone string, forceRefresh bool) (*Report, error) {
	loc, err := LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}

	key := cacheKeyPrefix + timezone

	if !forceRefresh {
		if entry, ok := s.cache.Get(ctx, key); ok {
			s.cacheHits.Add(ctx, 1)

			// The stored snapshot is served as fetched; only the
			// timestamp block is recomputed for this request.
			result := entry.Result
			result.Updated = NewTimestamp(time.Now(), timezone, loc)

			age := int64(entry.Age(time.Now()).Seconds())
			s.logger.Debug().
				Str("timezone", timezone).
				Int64("cache_age_s", age).
				Msg("cache hit")

			return &Report{Result: result, Cached: true, CacheAge: age}, nil
		}
		s.cacheMisses.Add(ctx, 1)
	}

	result, err := s.refresh(ctx, timezone, loc)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, *result)
	return &Report{Result: *result}, nil
}

// refresh performs one full fetch and normalize pass.
func (s *Service) refresh(ctx context.Context, timezone string, loc *time.Location) (*Result, error) {
	start := time.Now()

	payload, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("status fetch failed")
		return nil, err
	}

	components, incidents, err := Extract(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	health := CalculateHealth(components)
	overall := DetermineStatus(health, incidents)

	elapsed := time.Since(start)
	s.fetchDuration.Record(ctx, elapsed.Milliseconds())

	result := &Result{
		Status:     overall,
		Health:     health,
		Components: components,
		Incidents:  incidents,
		Updated:    NewTimestamp(time.Now(), timezone, loc),
		Meta: Meta{
			Official:       true,
			Source:         s.source.Source(),
			ScrapeDuration: elapsed.Milliseconds(),
		},
	}

	s.logger.Info().
		Dur("duration", elapsed).
		Int("health_percent", health.Percent).
		Int("component_count", len(components)).
		Int("incident_count", incidents.Count).
		Msg("status fetched")

	return result, nil
}

// CacheBackend reports which cache backend is active.
func (s *Service) CacheBackend() string {
	return s.cache.Backend()
}
