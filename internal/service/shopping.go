package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/storage"
	"github.com/pageza/recipefinder/backend/internal/types"
)

// ShoppingListService manages the shopping list stored under the
// shoppingList key.
type ShoppingListService struct {
	store   KeyValueStore
	recipes IRecipeService
	logger  *zap.Logger
}

// NewShoppingListService creates a new ShoppingListService instance
func NewShoppingListService(store KeyValueStore, recipes IRecipeService, log *zap.Logger) *ShoppingListService {
	return &ShoppingListService{
		store:   store,
		recipes: recipes,
		logger:  logger.OrNop(log),
	}
}

// List returns the items split into unchecked and checked, each in
// insertion order.
func (s *ShoppingListService) List(ctx context.Context) (*types.ShoppingList, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	list := &types.ShoppingList{
		Unchecked: []types.ShoppingItem{},
		Checked:   []types.ShoppingItem{},
	}
	for _, item := range items {
		if item.Checked {
			list.Checked = append(list.Checked, item)
		} else {
			list.Unchecked = append(list.Unchecked, item)
		}
	}
	return list, nil
}

// Add appends one unchecked item.
func (s *ShoppingListService) Add(ctx context.Context, name, amount, unit string) (*types.ShoppingItem, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	items, added, err := appendItem(items, name, amount, unit)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, storage.KeyShoppingList, items); err != nil {
		return nil, err
	}

	s.logger.Debug("shopping item added", zap.Int("id", added.ID), zap.String("name", added.Name))
	return &added, nil
}

// AddRecipeIngredients adds every ingredient of a recipe to the list and
// returns the new items.
func (s *ShoppingListService) AddRecipeIngredients(ctx context.Context, recipeID string) ([]types.ShoppingItem, error) {
	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	added := make([]types.ShoppingItem, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		var item types.ShoppingItem
		items, item, err = appendItem(items, ing.Name, ing.Amount, ing.Unit)
		if err != nil {
			continue
		}
		added = append(added, item)
	}

	if len(added) > 0 {
		if err := s.store.Save(ctx, storage.KeyShoppingList, items); err != nil {
			return nil, err
		}
	}

	s.logger.Info("recipe added to shopping list",
		zap.String("recipe_id", recipe.ID),
		zap.Int("items", len(added)),
	)
	return added, nil
}

// Toggle flips the checked state of an item.
func (s *ShoppingListService) Toggle(ctx context.Context, id int) (*types.ShoppingItem, error) {
	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	items[i].Checked = !items[i].Checked
	if err := s.store.Save(ctx, storage.KeyShoppingList, items); err != nil {
		return nil, err
	}
	item := items[i]
	return &item, nil
}

// Remove deletes an item.
func (s *ShoppingListService) Remove(ctx context.Context, id int) error {
	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOfItem(items, id)
	if i < 0 {
		return ErrItemNotFound
	}
	return s.store.Save(ctx, storage.KeyShoppingList, append(items[:i:i], items[i+1:]...))
}

// ClearChecked deletes every checked item and returns how many were removed.
func (s *ShoppingListService) ClearChecked(ctx context.Context) (int, error) {
	items, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]types.ShoppingItem, 0, len(items))
	for _, item := range items {
		if !item.Checked {
			kept = append(kept, item)
		}
	}
	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.Save(ctx, storage.KeyShoppingList, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// ClearAll empties the list.
func (s *ShoppingListService) ClearAll(ctx context.Context) error {
	return s.store.Save(ctx, storage.KeyShoppingList, []types.ShoppingItem{})
}

func (s *ShoppingListService) load(ctx context.Context) ([]types.ShoppingItem, error) {
	var items []types.ShoppingItem
	if _, err := s.store.Load(ctx, storage.KeyShoppingList, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// appendItem adds a trimmed item with the next id, one past the largest in
// use.
func appendItem(items []types.ShoppingItem, name, amount, unit string) ([]types.ShoppingItem, types.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return items, types.ShoppingItem{}, ErrEmptyItemName
	}

	next := 1
	for _, item := range items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}

	item := types.ShoppingItem{
		ID:     next,
		Name:   name,
		Amount: strings.TrimSpace(amount),
		Unit:   strings.TrimSpace(unit),
	}
	return append(items, item), item, nil
}

func indexOfItem(items []types.ShoppingItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
