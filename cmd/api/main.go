package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"little-lemon/internal/config"
	"little-lemon/internal/database"
	"little-lemon/internal/handler"
	"little-lemon/internal/repository"
	"little-lemon/internal/router"
	"little-lemon/internal/seed"
	"little-lemon/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting little-lemon menu API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	profileRepo := repository.NewProfileRepository(pool, logger)

	if err := profileRepo.EnsureSchema(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to ensure profile schema, profile endpoints will fail until storage recovers")
	}

	// Build the menu source: remote endpoint, with an optional local file
	// fallback when the remote is unreachable.
	var menuSource seed.Source
	menuSource = seed.NewHTTPSource(
		cfg.Menu.SourceURL,
		time.Duration(cfg.Menu.FetchTimeout)*time.Second,
		logger,
	)
	if cfg.Menu.FallbackFile != "" {
		menuSource = seed.NewFallbackSource(
			menuSource,
			seed.NewFileSource(cfg.Menu.FallbackFile, logger),
			logger,
		)
	}

	// Seed the menu cache if it is empty. Seeding failure is not fatal:
	// the server starts with an empty menu and retries on next start.
	seeder := seed.NewSeeder(menuRepo, menuSource, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Warn().Err(err).Msg("menu seeding failed, serving whatever the cache holds")
	}

	// Initialize services
	menuService := service.NewMenuService(menuRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, cfg.Menu.ImageBaseURL, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)

	// Initialize router
	mux := router.New(menuHandler, profileHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
