package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
	"github.com/pageza/recipefinder/backend/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	// Cancelled on an interrupt or terminate signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, zlog)
	stop()
	_ = zlog.Sync()
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run serves the API until ctx is cancelled or the server fails. Every
// resource it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	db, err := database.New(cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db, zlog); err != nil {
		return fmt.Errorf("failed to migrate local store: %w", err)
	}

	deps := server.Dependencies{
		DB:     db,
		Lookup: mealdb.NewClient(cfg.MealDBBaseURL, cfg.MealDBTimeout, zlog),
	}

	// Redis is optional: without it lookups go straight to TheMealDB and
	// searches are not rate limited
	if cfg.CacheEnabled() {
		rdb, err := database.NewRedisClient(ctx, cfg, zlog)
		if err != nil {
			zlog.Warn("redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer func() { _ = rdb.Close() }()
			deps.Redis = rdb
			deps.Lookup = mealdb.NewCachedClient(deps.Lookup, rdb, cfg.CacheTTL, zlog)
		}
	}

	srv := server.New(cfg, deps, zlog)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		zlog.Info("shutdown requested")
	}

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	if err := <-errChan; err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	zlog.Info("server stopped")
	return nil
}
