// Package main implements the entry point for the sales dashboard proxy
// service, the authenticated gateway between the dashboard frontend and the
// sales-data service.
package main

import (
	"context"
	"log"

	"github.com/salesdash/proxy-api/internal/config"
	"github.com/salesdash/proxy-api/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application
// dependencies, and runs the HTTP server until shutdown.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"downstream_base_url", cfg.Downstream.BaseURL,
		"allowed_origin", cfg.CORS.AllowedOrigin)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		appLogger.Error("Server terminated with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}
