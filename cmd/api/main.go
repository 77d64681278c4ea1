// Package main provides the entrypoint for the Roblox status API
// server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/robloxstatus/robloxstatus/internal/api"
	"github.com/robloxstatus/robloxstatus/internal/api/middleware"
	"github.com/robloxstatus/robloxstatus/internal/config"
	"github.com/robloxstatus/robloxstatus/internal/status"
	"github.com/robloxstatus/robloxstatus/internal/status/statusio"
	"github.com/robloxstatus/robloxstatus/internal/status/statuspage"
	"github.com/robloxstatus/robloxstatus/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "roblox-status-api"

	cfg := config.FromEnv()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("env", cfg.Env).
		Msg("starting Roblox status API")

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Telemetry.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Telemetry.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Cache backend: Redis when enabled and reachable, else in-process.
	cache := status.NewCache(cfg.Cache.RedisEnabled, cfg.Cache.RedisURL, cfg.Cache.TTL, log)
	log.Info().
		Str("backend", cache.Backend()).
		Dur("ttl", cfg.Cache.TTL).
		Msg("result cache initialized")

	var source status.Source
	switch cfg.Scraper.Source {
	case config.SourceStatusIO:
		source = statusio.NewClient(statusio.ClientConfig{
			Timeout:    cfg.Scraper.Timeout,
			MaxRetries: cfg.Scraper.Retries,
			RetryDelay: cfg.Scraper.RetryDelay,
		})
	default:
		source = statuspage.NewClient(statuspage.ClientConfig{
			Timeout:    cfg.Scraper.Timeout,
			MaxRetries: cfg.Scraper.Retries,
			RetryDelay: cfg.Scraper.RetryDelay,
		})
	}
	log.Info().
		Str("source", source.Source()).
		Dur("timeout", cfg.Scraper.Timeout).
		Uint64("retries", cfg.Scraper.Retries).
		Msg("status source initialized")

	statusService, err := status.NewService(status.ServiceConfig{
		Source: source,
		Cache:  cache,
		Logger: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize status service")
	}

	router := api.NewRouter(api.RouterConfig{
		Version:       Version,
		Logger:        log,
		Metrics:       metrics,
		StatusService: statusService,
		RateLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
		},
		CORSOrigin: cfg.CORS.Origin,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
