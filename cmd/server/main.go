package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolio-site-api/internal/api"
	"github.com/portfolio-site-api/internal/config"
	"github.com/portfolio-site-api/internal/database"
	"github.com/portfolio-site-api/internal/ratelimit"
	"github.com/portfolio-site-api/internal/repository"
	"github.com/portfolio-site-api/internal/service"
	"github.com/portfolio-site-api/internal/sheets"
	"github.com/portfolio-site-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting portfolio site API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Login attempt counters: Redis when configured, in-process otherwise
	var attempts ratelimit.AttemptStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		}
		attempts = ratelimit.NewRedisStore(client, cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Using Redis attempt store")
	} else {
		attempts = ratelimit.NewMemoryStore(cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow)
		log.Info().Msg("REDIS_ADDR not set, using in-memory attempt store")
	}

	// Spreadsheet credential store
	var credStore sheets.CredentialStore
	if cfg.Sheets.SpreadsheetID != "" {
		client, err := sheets.NewClient(context.Background(), sheets.Config{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			Worksheet:       cfg.Sheets.Worksheet,
			CredentialsFile: cfg.Sheets.CredentialsFile,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		credStore = client
	} else {
		credStore = sheets.Unconfigured{}
		log.Warn().Msg("GOOGLE_SHEET_ID not set, sheet login and registration will be unavailable")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, credStore, attempts, cfg, log)

	// Initialize router
	router := api.NewRouter(services, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
