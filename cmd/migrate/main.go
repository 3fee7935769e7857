package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/storage"
)

func main() {
	// Parse command line flags
	reset := flag.Bool("reset", false, "Delete the saved recipes and the shopping list after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open local store", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db, zlog); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	if *reset {
		store := storage.NewLocal(db)
		for _, key := range []string{storage.KeySavedRecipes, storage.KeyShoppingList} {
			if err := store.RemoveItem(context.Background(), key); err != nil {
				zlog.Fatal("reset failed", zap.String("key", key), zap.Error(err))
			}
		}
		zlog.Info("local store reset", zap.String("path", cfg.StoragePath))
	}
}
