package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/salesdash/proxy-api/internal/config"
	"github.com/salesdash/proxy-api/internal/downstream"
	"github.com/salesdash/proxy-api/internal/service/auth"
)

// application holds all the shared application dependencies. Everything here
// is constructed once at startup and immutable afterwards; requests share
// these handles but no mutable state.
type application struct {
	config *config.Config
	logger *slog.Logger

	// jwtService validates bearer tokens against the configured trust
	// parameters (signing key, issuer, audience).
	jwtService auth.JWTService

	// downstreamClient is the single point through which every route
	// reaches the sales-data service.
	downstreamClient downstream.Client

	// metricsRegistry backs the /metrics endpoint and the per-request
	// instrumentation.
	metricsRegistry *prometheus.Registry
}

// newApplication creates a new application instance with all dependencies
// initialized from configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"issuer", cfg.Auth.Issuer,
		"audience", cfg.Auth.Audience,
		"clock_skew_seconds", cfg.Auth.ClockSkewSeconds)

	app.downstreamClient, err = downstream.NewHTTPClient(cfg.Downstream)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize downstream client: %w", err)
	}
	logger.Info("Downstream client initialized", "base_url", cfg.Downstream.BaseURL)

	app.metricsRegistry = prometheus.NewRegistry()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
