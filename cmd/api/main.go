package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticket-optimiser/internal/calendar"
	"ticket-optimiser/internal/config"
	"ticket-optimiser/internal/database"
	"ticket-optimiser/internal/handler"
	"ticket-optimiser/internal/repository"
	"ticket-optimiser/internal/router"
	"ticket-optimiser/internal/service"
	"ticket-optimiser/internal/ticket"
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
	logger.Info().Msg("starting ticket-optimiser API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	// Initialize repositories
	historyRepo := repository.NewHistoryRepository(pool, logger)

	// Initialize catalogue loader with S3 and local fallback
	fileLoader := ticket.NewFileLoader(logger)
	var catalogLoader ticket.Loader

	if cfg.S3.Enabled {
		s3Loader, err := ticket.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			catalogLoader = fileLoader
		} else {
			catalogLoader = ticket.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
		}
	} else {
		// S3 disabled, use local file system only
		catalogLoader = fileLoader
		logger.Info().Msg("using local file system for the ticket catalogue (S3 disabled)")
	}

	// Load the ticket catalogue, falling back to the built-in one
	catalog, err := catalogLoader.Load(ctx, cfg.Catalog.Path)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("path", cfg.Catalog.Path).
			Msg("failed to load ticket catalogue, using built-in defaults")
		catalog = ticket.DefaultCatalog()
	}
	logger.Info().Int("products", catalog.Size()).Msg("ticket catalogue loaded")

	// Initialize calendar source with memoisation
	calendarClient := calendar.NewClient(calendar.ClientConfig{
		BaseURL:    cfg.Calendar.BaseURL,
		Token:      cfg.Calendar.Token,
		SearchText: cfg.Calendar.SearchText,
		Timeout:    time.Duration(cfg.Calendar.Timeout) * time.Second,
	}, logger)
	source := calendar.NewMemoizingSource(calendarClient, time.Duration(cfg.Calendar.CacheTTL)*time.Second)

	// Initialize services
	recommendationService := service.NewRecommendationService(
		catalog,
		source,
		historyRepo,
		cfg.Calendar.LookaheadDays,
		logger,
	)

	// Initialize HTTP handlers
	ticketHandler := handler.NewTicketHandler(catalog, logger)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, logger)
	historyHandler := handler.NewHistoryHandler(recommendationService, logger)

	// Initialize router
	mux := router.New(ticketHandler, recommendationHandler, historyHandler, cfg.Auth.APIKey, logger)

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
