package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/storage"
	"github.com/pageza/recipefinder/backend/internal/types"
)

const dateAddedLayout = "2006-01-02"

// CollectionService manages the saved recipe collection, a JSON array kept
// newest first under the savedRecipes key.
type CollectionService struct {
	store   KeyValueStore
	recipes IRecipeService
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

// NewCollectionService creates a new CollectionService instance
func NewCollectionService(store KeyValueStore, recipes IRecipeService, log *zap.Logger) *CollectionService {
	return &CollectionService{
		store:   store,
		recipes: recipes,
		logger:  logger.OrNop(log),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// List returns the saved recipes whose title or any cuisine contains filter,
// ignoring case. An empty filter returns everything.
func (s *CollectionService) List(ctx context.Context, filter string) ([]types.Recipe, error) {
	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return nil, err
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return saved, nil
	}

	matched := make([]types.Recipe, 0, len(saved))
	for _, r := range saved {
		if matchesFilter(r, filter) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// Get returns one saved recipe.
func (s *CollectionService) Get(ctx context.Context, id string) (*types.Recipe, error) {
	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return nil, err
	}
	i := indexOfRecipe(saved, id)
	if i < 0 {
		return nil, ErrRecipeNotFound
	}
	return &saved[i], nil
}

// IsSaved reports whether a recipe with id is in the collection.
func (s *CollectionService) IsSaved(ctx context.Context, id string) (bool, error) {
	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return false, err
	}
	return indexOfRecipe(saved, id) >= 0, nil
}

// Save prepends recipe to the collection, stamping today's date. It returns
// false without changing anything when the id is already saved.
func (s *CollectionService) Save(ctx context.Context, recipe types.Recipe) (bool, error) {
	recipe.ID = strings.TrimSpace(recipe.ID)
	if recipe.ID == "" {
		return false, fmt.Errorf("%w: id is required", ErrInvalidRecipe)
	}

	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return false, err
	}
	if indexOfRecipe(saved, recipe.ID) >= 0 {
		return false, nil
	}

	recipe.DateAdded = s.now().Format(dateAddedLayout)
	normalizeRecipe(&recipe)

	if err := s.store.Save(ctx, storage.KeySavedRecipes, append([]types.Recipe{recipe}, saved...)); err != nil {
		return false, err
	}
	s.logger.Info("recipe saved", zap.String("id", recipe.ID), zap.String("title", recipe.Title))
	return true, nil
}

// SaveByID resolves id through the recipe service and saves the result.
func (s *CollectionService) SaveByID(ctx context.Context, id string) (*types.Recipe, bool, error) {
	recipe, err := s.recipes.GetRecipe(ctx, id)
	if err != nil {
		return nil, false, err
	}
	added, err := s.Save(ctx, *recipe)
	if err != nil {
		return nil, false, err
	}
	if !added {
		return recipe, false, nil
	}
	saved, err := s.Get(ctx, recipe.ID)
	if err != nil {
		return nil, false, err
	}
	return saved, true, nil
}

// Create stores a user-authored recipe under a fresh id.
func (s *CollectionService) Create(ctx context.Context, req *types.CreateRecipeRequest) (*types.Recipe, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRecipe)
	}
	if req.ReadyInMinutes < 0 || req.Servings < 0 {
		return nil, fmt.Errorf("%w: readyInMinutes and servings must not be negative", ErrInvalidRecipe)
	}

	ingredients := make([]types.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		ingredients = append(ingredients, ing)
	}

	image := strings.TrimSpace(req.Image)
	if image == "" {
		image = types.PlaceholderImage
	}

	recipe := types.Recipe{
		ID:             s.newID(),
		Title:          title,
		Image:          image,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		Cuisines:       splitCuisines(req.Cuisines),
		Summary:        req.Summary,
		Instructions:   req.Instructions,
		Ingredients:    ingredients,
	}

	if _, err := s.Save(ctx, recipe); err != nil {
		return nil, err
	}
	return s.Get(ctx, recipe.ID)
}

// Remove deletes a recipe from the collection.
func (s *CollectionService) Remove(ctx context.Context, id string) error {
	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return err
	}
	i := indexOfRecipe(saved, id)
	if i < 0 {
		return ErrRecipeNotFound
	}

	remaining := append(saved[:i:i], saved[i+1:]...)
	if err := s.store.Save(ctx, storage.KeySavedRecipes, remaining); err != nil {
		return err
	}
	s.logger.Info("recipe removed", zap.String("id", id))
	return nil
}

func loadSavedRecipes(ctx context.Context, store KeyValueStore) ([]types.Recipe, error) {
	var saved []types.Recipe
	if _, err := store.Load(ctx, storage.KeySavedRecipes, &saved); err != nil {
		return nil, err
	}
	for i := range saved {
		normalizeRecipe(&saved[i])
	}
	return saved, nil
}

// indexOfRecipe compares ids as strings so "52940" finds a recipe saved with
// a numeric id.
func indexOfRecipe(recipes []types.Recipe, id string) int {
	id = strings.TrimSpace(id)
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func matchesFilter(r types.Recipe, filter string) bool {
	if strings.Contains(strings.ToLower(r.Title), filter) {
		return true
	}
	for _, c := range r.Cuisines {
		if strings.Contains(strings.ToLower(c), filter) {
			return true
		}
	}
	return false
}

func normalizeRecipe(r *types.Recipe) {
	if r.Cuisines == nil {
		r.Cuisines = []string{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []types.Ingredient{}
	}
}

func splitCuisines(raw string) []string {
	cuisines := []string{}
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cuisines = append(cuisines, c)
		}
	}
	return cuisines
}
