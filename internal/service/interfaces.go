package service

import (
	"context"

	"github.com/pageza/recipefinder/backend/internal/types"
)

// KeyValueStore is the part of storage.Local the services need.
type KeyValueStore interface {
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

// ISearchService defines the interface for recipe search operations
type ISearchService interface {
	SearchByIngredients(ctx context.Context, terms []string) ([]types.CandidateRecipe, error)
	SearchByIngredientsWithReport(ctx context.Context, terms []string) (*SearchReport, error)
	SearchByName(ctx context.Context, query string) ([]types.CandidateRecipe, error)
	SearchByCuisine(ctx context.Context, cuisine string) ([]types.CandidateRecipe, error)
}

// IRecipeService defines the interface for recipe detail lookups
type IRecipeService interface {
	GetRecipe(ctx context.Context, id string) (*types.Recipe, error)
}

// ICollectionService defines the interface for the saved recipe collection
type ICollectionService interface {
	List(ctx context.Context, filter string) ([]types.Recipe, error)
	Get(ctx context.Context, id string) (*types.Recipe, error)
	IsSaved(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, recipe types.Recipe) (bool, error)
	SaveByID(ctx context.Context, id string) (*types.Recipe, bool, error)
	Create(ctx context.Context, req *types.CreateRecipeRequest) (*types.Recipe, error)
	Remove(ctx context.Context, id string) error
}

// IShoppingListService defines the interface for shopping list operations
type IShoppingListService interface {
	List(ctx context.Context) (*types.ShoppingList, error)
	Add(ctx context.Context, name, amount, unit string) (*types.ShoppingItem, error)
	AddRecipeIngredients(ctx context.Context, recipeID string) ([]types.ShoppingItem, error)
	Toggle(ctx context.Context, id int) (*types.ShoppingItem, error)
	Remove(ctx context.Context, id int) error
	ClearChecked(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

// ISuggestionService defines the interface for ingredient autocomplete
type ISuggestionService interface {
	Suggest(input string) []string
}
