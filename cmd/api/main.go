// Copyright (c) 2026 Historical Places Explorer. All rights reserved.
// Author: red4golf

// Command api is the entry point for the Historical Places HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Prepare the content store directories.
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/red4golf/historical-places-explorer/internal/api"
	"github.com/red4golf/historical-places-explorer/internal/media"
	"github.com/red4golf/historical-places-explorer/internal/places"
	"github.com/red4golf/historical-places-explorer/internal/platform/config"
	"github.com/red4golf/historical-places-explorer/internal/platform/constants"
	"github.com/red4golf/historical-places-explorer/internal/stories"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("content_root", cfg.ContentRoot),
	)

	// ── 3. Content Store ──────────────────────────────────────────────────
	must(log, prepareContentRoot(cfg), "prepare content root")

	log.Info("content_store_ready",
		slog.String("locations", cfg.LocationsDir()),
		slog.String("drafts", cfg.DraftsDir()),
		slog.String("media", cfg.MediaDir(constants.MediaKindImage)),
		slog.String("stories", cfg.StoriesDir()),
	)

	// ── 4. Health handlers (wired with a real dependency checker) ─────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckContentStore: func() error {
			return checkWritable(cfg.ContentRoot)
		},
	}, log)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	locationStore := places.NewLocationStore(cfg.LocationsDir())
	draftStore := places.NewDraftStore(cfg.DraftsDir())
	placesService := places.NewService(locationStore, draftStore, cfg.ApprovePreserveLabels, log)
	placesHandler := places.NewHandler(placesService)

	mediaService := media.NewService(cfg.MediaDir, cfg.MaxUploadBytes, log)
	mediaHandler := media.NewHandler(mediaService, cfg.MaxUploadBytes)

	storiesService := stories.NewService(cfg.StoriesDir(), log)
	storiesHandler := stories.NewHandler(storiesService)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Places:    placesHandler,
		Media:     mediaHandler,
		Stories:   storiesHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// prepareContentRoot creates the content partitions so first requests never
// race over directory creation.
func prepareContentRoot(cfg *config.Config) error {
	dirs := []string{
		cfg.LocationsDir(),
		cfg.DraftsDir(),
		cfg.MediaDir(constants.MediaKindImage),
		cfg.MediaDir(constants.MediaKindDocument),
		cfg.StoriesDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// checkWritable probes that the content root accepts writes.
func checkWritable(root string) error {
	probe := filepath.Join(root, ".ready-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
