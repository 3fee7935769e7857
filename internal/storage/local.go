// Package storage keeps the user's data in a key/value table shaped like
// browser local storage: every key holds one JSON document.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipefinder/backend/internal/model"
)

// Keys used by the application.
const (
	KeySavedRecipes = "savedRecipes"
	KeyShoppingList = "shoppingList"
)

// Local is a gorm-backed key/value store.
type Local struct {
	db *gorm.DB
}

// NewLocal creates a store on db. The storage_items table must exist.
func NewLocal(db *gorm.DB) *Local {
	return &Local{db: db}
}

// GetItem returns the raw value under key and whether the key exists.
func (s *Local) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item model.StorageItem
	err := s.db.WithContext(ctx).First(&item, "item_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return item.Value, true, nil
}

// SetItem stores value under key, replacing any previous value.
func (s *Local) SetItem(ctx context.Context, key, value string) error {
	item := model.StorageItem{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (s *Local) RemoveItem(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&model.StorageItem{}, "item_key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// Load decodes the JSON document under key into v. It reports false and
// leaves v untouched when the key does not exist.
func (s *Local) Load(ctx context.Context, key string, v any) (bool, error) {
	raw, ok, err := s.GetItem(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("stored %s is not valid JSON: %w", key, err)
	}
	return true, nil
}

// Save encodes v as JSON and stores it under key.
func (s *Local) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.SetItem(ctx, key, string(data))
}
