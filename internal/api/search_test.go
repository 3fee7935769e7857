package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/testutil/mocks"
	"github.com/pageza/recipefinder/backend/internal/types"
)

func TestSearchByIngredientsHandler(t *testing.T) {
	t.Run("should return ranked recipes and failed terms", func(t *testing.T) {
		router, ts := setupTestRouter(t)
		ts.search.On("SearchByIngredientsWithReport", mock.Anything, []string{"chicken", "rice", "kale"}).Return(&service.SearchReport{
			Candidates: []types.CandidateRecipe{{
				ID:                  "52940",
				Title:               "Brown Stew Chicken",
				MatchedIngredients:  []string{"chicken", "rice"},
				UsedIngredientCount: 2,
			}},
			FailedTerms: []string{"kale"},
		}, nil)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search/ingredients?i=chicken&i=rice&i=kale", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		recipes := body["recipes"].([]any)
		assert.Len(t, recipes, 1)
		first := recipes[0].(map[string]any)
		assert.Equal(t, "52940", first["id"])
		assert.Equal(t, float64(2), first["usedIngredientCount"])
		assert.Equal(t, []any{"kale"}, body["failedTerms"])
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"no ingredients", service.ErrNoIngredients, http.StatusBadRequest, "Please enter at least one ingredient"},
		{"no matches", service.ErrNoMatches, http.StatusNotFound, "No recipes found with the provided ingredients. Try different ingredients."},
		{"transport failure", fmt.Errorf("%w: %w", service.ErrTransportFailure, errors.New("ctx done")), http.StatusBadGateway, "Failed to fetch recipes. Please try again later."},
	}
	for _, tt := range tests {
		t.Run("should map "+tt.name, func(t *testing.T) {
			router, ts := setupTestRouter(t)
			ts.search.On("SearchByIngredientsWithReport", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doRequest(t, router, http.MethodGet, "/api/v1/search/ingredients?i=x", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, decode(t, w)["error"])
		})
	}
}

func TestSearchHandler(t *testing.T) {
	t.Run("should search by name", func(t *testing.T) {
		router, ts := setupTestRouter(t)
		ts.search.On("SearchByName", mock.Anything, "curry").Return([]types.CandidateRecipe{{ID: "1", Title: "Katsu Curry"}}, nil)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search?q=curry", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["recipes"], 1)
		ts.search.AssertNotCalled(t, "SearchByCuisine", mock.Anything, mock.Anything)
	})

	t.Run("should search by cuisine", func(t *testing.T) {
		router, ts := setupTestRouter(t)
		ts.search.On("SearchByCuisine", mock.Anything, "Italian").Return([]types.CandidateRecipe{{ID: "2"}}, nil)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search?cuisine=Italian", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("should reject an empty query", func(t *testing.T) {
		router, ts := setupTestRouter(t)
		ts.search.On("SearchByName", mock.Anything, "").Return(nil, service.ErrEmptyQuery)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should report no matches", func(t *testing.T) {
		router, ts := setupTestRouter(t)
		ts.search.On("SearchByName", mock.Anything, "zzz").Return(nil, service.ErrNoMatches)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search?q=zzz", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No recipes found", decode(t, w)["error"])
	})
}

func TestSuggestHandler(t *testing.T) {
	router, ts := setupTestRouter(t)
	ts.suggest.On("Suggest", "gar").Return([]string{"Garlic", "Garam masala"})

	w := doRequest(t, router, http.MethodGet, "/api/v1/ingredients/suggest?q=gar", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"Garlic", "Garam masala"}, decode(t, w)["suggestions"])
}

func TestSearchLimiterScope(t *testing.T) {
	search := new(mocks.MockSearchService)
	var limited []string
	limiter := func(c *gin.Context) {
		limited = append(limited, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
	}

	router := gin.New()
	SetupAPI(router, Services{
		Search:        search,
		Suggestions:   new(mocks.MockSuggestionService),
		Recipes:       new(mocks.MockRecipeService),
		Collection:    new(mocks.MockCollectionService),
		ShoppingList:  new(mocks.MockShoppingListService),
		CheckStorage:  func(ctx context.Context) error { return nil },
		SearchLimiter: limiter,
	})

	t.Run("should limit name searches", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/v1/search?q=curry", nil)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		search.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})

	t.Run("should never limit ingredient searches", func(t *testing.T) {
		search.On("SearchByIngredientsWithReport", mock.Anything, []string{"chicken"}).Return(&service.SearchReport{
			Candidates:  []types.CandidateRecipe{{ID: "52940", MatchedIngredients: []string{"chicken"}, UsedIngredientCount: 1}},
			FailedTerms: []string{},
		}, nil)

		w := doRequest(t, router, http.MethodGet, "/api/v1/search/ingredients?i=chicken", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		search.AssertExpectations(t)
	})

	assert.Equal(t, []string{"/api/v1/search"}, limited)
}
