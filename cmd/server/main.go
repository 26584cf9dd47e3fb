// Package main is the entry point for the plant-care API server.
//
// MAIN PACKAGE IN GO:
// The main package should be kept minimal. Its job is to:
// 1. Read configuration (env vars, optional YAML file)
// 2. Create dependencies (logger, store, object store)
// 3. Start the application
//
// All actual logic lives in imported packages (internal/server, internal/handler, etc.).
// cmd/plantctl is the second executable: migrations and an alternative way
// to start the same server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakif/plant-care/internal/config"
	"github.com/sakif/plant-care/internal/logging"
	"github.com/sakif/plant-care/internal/server"
)

func main() {
	// === 1. READ CONFIGURATION ===
	// CONFIG_PATH points at an optional YAML file; env vars override it.
	cfg, err := config.Load()
	if err != nil {
		// No configured logger yet; the default one writes to stderr.
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// === 2. SET UP LOGGING ===
	logger := logging.New(cfg.Log)

	// === 3. OPEN THE STORE AND BUILD THE SERVER ===
	srv, err := server.Open(context.Background(), *cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start() blocks until the server is shut down (via Ctrl+C or SIGTERM)
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
