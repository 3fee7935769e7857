package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/model"
)

// RunMigrations creates or updates the local store schema.
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log = logger.OrNop(log)
	if err := db.AutoMigrate(&model.StorageItem{}); err != nil {
		return fmt.Errorf("failed to migrate local store: %w", err)
	}
	log.Info("local store schema up to date", zap.String("dialect", db.Dialector.Name()))
	return nil
}
