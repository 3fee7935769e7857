package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
	"github.com/pageza/recipefinder/backend/internal/types"
)

const (
	summaryLength  = 150
	defaultSummary = "No summary available."
)

// RecipeService resolves a recipe id to its full details, preferring the
// saved collection over TheMealDB.
type RecipeService struct {
	store  KeyValueStore
	lookup mealdb.Lookup
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(store KeyValueStore, lookup mealdb.Lookup, log *zap.Logger) *RecipeService {
	return &RecipeService{
		store:  store,
		lookup: lookup,
		logger: logger.OrNop(log),
	}
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*types.Recipe, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrRecipeNotFound
	}

	saved, err := loadSavedRecipes(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if i := indexOfRecipe(saved, id); i >= 0 {
		return &saved[i], nil
	}

	meal, err := s.lookup.LookupByID(ctx, id)
	if err != nil {
		s.logger.Warn("recipe lookup failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	if meal == nil {
		return nil, ErrRecipeNotFound
	}

	recipe := RecipeFromMeal(meal)
	return &recipe, nil
}

// RecipeFromMeal converts a TheMealDB lookup record to the collection format.
func RecipeFromMeal(meal *mealdb.Meal) types.Recipe {
	ingredients := make([]types.Ingredient, 0, len(meal.Ingredients))
	for _, ing := range meal.Ingredients {
		ingredients = append(ingredients, types.Ingredient{Name: ing.Name, Amount: ing.Measure})
	}

	cuisines := []string{}
	if meal.Area != "" {
		cuisines = append(cuisines, meal.Area)
	}

	return types.Recipe{
		ID:             meal.ID,
		Title:          meal.Name,
		Image:          meal.Thumbnail,
		ReadyInMinutes: types.DefaultReadyInMinutes,
		Servings:       types.DefaultServings,
		Cuisines:       cuisines,
		Summary:        summarize(meal.Instructions),
		Instructions:   meal.Instructions,
		Ingredients:    ingredients,
		Category:       meal.Category,
		Area:           meal.Area,
		YouTube:        meal.YouTube,
		Source:         meal.Source,
	}
}

func summarize(instructions string) string {
	if instructions == "" {
		return defaultSummary
	}
	runes := []rune(instructions)
	if len(runes) > summaryLength {
		runes = runes[:summaryLength]
	}
	return string(runes) + "..."
}
