// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer. It connects handlers, middleware, and routes:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
//
//	main.go:        config.Load → logging.New → server.Open
//	server.Open:    config → store (postgres | sqlite) + object store (optional)
//	server.New:     store → services → handlers → routes
//
// This is the "composition root" pattern: all dependencies are wired in one
// place, rather than scattered across the codebase. New takes the store and
// object store as arguments so tests can build a server over an in-memory
// SQLite database and a fake bucket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/plant-care/internal/config"
	"github.com/sakif/plant-care/internal/handler"
	"github.com/sakif/plant-care/internal/middleware"
	"github.com/sakif/plant-care/internal/objectstore"
	"github.com/sakif/plant-care/internal/repository"
	"github.com/sakif/plant-care/internal/repository/postgres"
	sqliteRepo "github.com/sakif/plant-care/internal/repository/sqlite"
	"github.com/sakif/plant-care/internal/service"
)

// Server represents the HTTP server and all its dependencies.
//
// RESOURCE MANAGEMENT:
// The Server owns the store. When Start returns, the store is closed so pool
// connections are released and SQLite flushes its WAL.
type Server struct {
	router  *chi.Mux
	config  config.Config
	logger  *slog.Logger
	store   repository.Store
	metrics *middleware.Metrics
}

// Open connects the store and, when credentials are configured, the object
// store, then builds the Server.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	store, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	// A nil interface, not a nil *objectstore.S3: PhotoService checks for nil.
	var objects service.ObjectStore
	if cfg.ObjectStore.Enabled() {
		s3, err := objectstore.New(ctx, cfg.ObjectStore, logger)
		if err != nil {
			store.Close()
			return nil, err
		}
		objects = s3
	} else {
		logger.Warn("object store credentials not set, /photo-upload will return 503")
	}

	return New(cfg, logger, store, objects), nil
}

// OpenStore opens the relational store named by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		logger.Info("store ready", slog.String("driver", cfg.Driver))
		return db, nil

	case config.DriverSQLite:
		if cfg.DSN != ":memory:" {
			// os.MkdirAll creates all parent directories if needed (like `mkdir -p`).
			if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
		db, err := sqliteRepo.New(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		logger.Info("store ready",
			slog.String("driver", cfg.Driver),
			slog.String("path", cfg.DSN),
		)
		return db, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// New creates a Server over an already opened store. objects may be nil.
func New(cfg config.Config, logger *slog.Logger, store repository.Store, objects service.ObjectStore) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		config:  cfg,
		logger:  logger,
		store:   store,
		metrics: middleware.NewMetrics(),
	}
	s.setupRoutes(objects)
	return s
}

// Handler returns the router, for tests and for embedding in another server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	GET|POST|PUT  /plants        → PlantHandler
//	GET|POST      /journal       → JournalHandler
//	GET|POST      /reminders     → ReminderHandler
//	GET|POST      /community     → CommunityHandler
//	POST          /photo-upload  → PhotoHandler
//	GET           /healthz       → store ping
//	GET           /metrics       → Prometheus
//
// Each resource is its own sub-router so it gets its own CORS middleware
// (the allowed methods differ per resource). OPTIONS never reaches the
// routes: CORS answers it.
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID: assigns unique ID to each request (for tracing)
// 2. RealIP: extracts real client IP from proxy headers
// 3. Logger: logs each request with timing info
// 4. Metrics: counts requests per route
// 5. Recoverer: catches panics and returns 500 instead of crashing
// 6. RequestSize: caps request bodies (photos arrive base64-encoded)
func (s *Server) setupRoutes(objects service.ObjectStore) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(s.metrics.Middleware)
	s.router.Use(chimiddleware.Recoverer)
	if limit := s.config.Server.MaxBodyBytes; limit > 0 {
		s.router.Use(chimiddleware.RequestSize(limit))
	}

	// Set before the sub-routers are mounted so chi copies them into each one.
	s.router.NotFound(handler.NotFound(s.logger))
	s.router.MethodNotAllowed(handler.MethodNotAllowed(s.logger))

	// === Services ===
	plantService := service.NewPlantService(s.store, s.logger)
	journalService := service.NewJournalService(s.store, s.logger)
	reminderService := service.NewReminderService(s.store, s.logger)
	communityService := service.NewCommunityService(s.store, s.logger)
	photoService := service.NewPhotoService(objects, s.config.CDN, s.logger)

	// === Handlers ===
	plants := handler.NewPlantHandler(plantService, s.logger)
	journal := handler.NewJournalHandler(journalService, s.logger)
	reminders := handler.NewReminderHandler(reminderService, s.logger)
	community := handler.NewCommunityHandler(communityService, s.logger)
	photos := handler.NewPhotoHandler(photoService, s.logger)
	health := handler.NewHealthHandler(s.store, s.logger)

	s.router.Route("/plants", func(r chi.Router) {
		r.Use(middleware.CORS(http.MethodGet, http.MethodPost, http.MethodPut))
		r.Get("/", plants.HandleGet)
		r.Post("/", plants.HandlePost)
		r.Put("/", plants.HandlePut)
	})

	s.router.Route("/journal", func(r chi.Router) {
		r.Use(middleware.CORS(http.MethodGet, http.MethodPost))
		r.Get("/", journal.HandleList)
		r.Post("/", journal.HandleCreate)
	})

	// PUT is advertised to browsers but not served; it answers 405.
	s.router.Route("/reminders", func(r chi.Router) {
		r.Use(middleware.CORS(http.MethodGet, http.MethodPost, http.MethodPut))
		r.Get("/", reminders.HandleList)
		r.Post("/", reminders.HandlePost)
	})

	s.router.Route("/community", func(r chi.Router) {
		r.Use(middleware.CORS(http.MethodGet, http.MethodPost))
		r.Get("/", community.HandleList)
		r.Post("/", community.HandlePost)
	})

	s.router.Route("/photo-upload", func(r chi.Router) {
		r.Use(middleware.CORS(http.MethodPost))
		r.Post("/", photos.HandleUpload)
	})

	s.router.Get("/healthz", health.HandleHealth)
	s.router.Handle("/metrics", s.metrics.Handler())
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (Server.ShutdownTimeout)
// 3. Close the store (deferred, so it also runs on a listen error)
func (s *Server) Start() error {
	defer func() {
		if err := s.store.Close(); err != nil {
			s.logger.Error("failed to close store", slog.String("error", err.Error()))
		}
	}()

	cfg := s.config.Server
	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine (so it doesn't block)
	go func() {
		s.logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("database", s.config.Database.Driver),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
