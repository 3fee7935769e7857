package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/storage"
)

// Seeds the saved collection with the demo recipes the web client ships
// with. Recipes already in the collection are left alone.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	added, err := run(context.Background(), cfg, zlog)
	_ = zlog.Sync()
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d of %d demo recipes", added, len(demoRecipes))
}

// run saves every demo recipe not yet in the collection and returns how many
// were added.
func run(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (int, error) {
	db, err := database.New(cfg, zlog)
	if err != nil {
		return 0, fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.RunMigrations(db, zlog); err != nil {
		return 0, fmt.Errorf("failed to migrate local store: %w", err)
	}

	collection := service.NewCollectionService(storage.NewLocal(db), nil, zlog)

	added := 0
	// Saving prepends, so walk backwards to keep demo-1 on top
	for i := len(demoRecipes) - 1; i >= 0; i-- {
		recipe := demoRecipes[i]
		ok, err := collection.Save(ctx, recipe)
		if err != nil {
			return added, fmt.Errorf("failed to seed recipe %s: %w", recipe.ID, err)
		}
		if ok {
			added++
		} else {
			zlog.Info("recipe already saved", zap.String("id", recipe.ID), zap.String("title", recipe.Title))
		}
	}

	zlog.Info("seeding complete", zap.Int("added", added), zap.Int("total", len(demoRecipes)))
	return added, nil
}
