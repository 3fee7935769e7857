package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/service"
)

// Services bundles what the handlers need.
type Services struct {
	Search       service.ISearchService
	Suggestions  service.ISuggestionService
	Recipes      service.IRecipeService
	Collection   service.ICollectionService
	ShoppingList service.IShoppingListService

	// CheckStorage backs the health endpoint. Optional.
	CheckStorage func(ctx context.Context) error
	// SearchLimiter guards name and cuisine searches. Optional.
	SearchLimiter gin.HandlerFunc
}

// SetupAPI registers every /api/v1 route on router.
func SetupAPI(router *gin.Engine, svcs Services) {
	health := NewHealthHandler(svcs.CheckStorage)
	health.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	{
		health.RegisterRoutes(v1)
		NewSearchHandler(svcs.Search, svcs.Suggestions, svcs.SearchLimiter).RegisterRoutes(v1)
		NewRecipeHandler(svcs.Recipes, svcs.Collection).RegisterRoutes(v1)
		NewCollectionHandler(svcs.Collection).RegisterRoutes(v1)
		NewShoppingListHandler(svcs.ShoppingList).RegisterRoutes(v1)
	}
}
