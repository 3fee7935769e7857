package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

// MockSearchService is a mock implementation of service.ISearchService
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) SearchByIngredients(ctx context.Context, terms []string) ([]types.CandidateRecipe, error) {
	args := m.Called(ctx, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CandidateRecipe), args.Error(1)
}

func (m *MockSearchService) SearchByIngredientsWithReport(ctx context.Context, terms []string) (*service.SearchReport, error) {
	args := m.Called(ctx, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchReport), args.Error(1)
}

func (m *MockSearchService) SearchByName(ctx context.Context, query string) ([]types.CandidateRecipe, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CandidateRecipe), args.Error(1)
}

func (m *MockSearchService) SearchByCuisine(ctx context.Context, cuisine string) ([]types.CandidateRecipe, error) {
	args := m.Called(ctx, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CandidateRecipe), args.Error(1)
}

// MockSuggestionService is a mock implementation of service.ISuggestionService
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(input string) []string {
	args := m.Called(input)
	return args.Get(0).([]string)
}

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id string) (*types.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

// MockCollectionService is a mock implementation of service.ICollectionService
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) List(ctx context.Context, filter string) ([]types.Recipe, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Recipe), args.Error(1)
}

func (m *MockCollectionService) Get(ctx context.Context, id string) (*types.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockCollectionService) IsSaved(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionService) Save(ctx context.Context, recipe types.Recipe) (bool, error) {
	args := m.Called(ctx, recipe)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionService) SaveByID(ctx context.Context, id string) (*types.Recipe, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*types.Recipe), args.Bool(1), args.Error(2)
}

func (m *MockCollectionService) Create(ctx context.Context, req *types.CreateRecipeRequest) (*types.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockCollectionService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShoppingListService is a mock implementation of service.IShoppingListService
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) List(ctx context.Context) (*types.ShoppingList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) Add(ctx context.Context, name, amount, unit string) (*types.ShoppingItem, error) {
	args := m.Called(ctx, name, amount, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ShoppingItem), args.Error(1)
}

func (m *MockShoppingListService) AddRecipeIngredients(ctx context.Context, recipeID string) ([]types.ShoppingItem, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ShoppingItem), args.Error(1)
}

func (m *MockShoppingListService) Toggle(ctx context.Context, id int) (*types.ShoppingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ShoppingItem), args.Error(1)
}

func (m *MockShoppingListService) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShoppingListService) ClearChecked(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockShoppingListService) ClearAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
