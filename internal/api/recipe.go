package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/middleware"
	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

type RecipeHandler struct {
	recipeService     service.IRecipeService
	collectionService service.ICollectionService
}

func NewRecipeHandler(recipeService service.IRecipeService, collectionService service.ICollectionService) *RecipeHandler {
	return &RecipeHandler{
		recipeService:     recipeService,
		collectionService: collectionService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/:id", h.GetRecipe)
}

// GetRecipe returns a recipe's details and whether it is in the collection.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	recipe, err := h.recipeService.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrTransportFailure) {
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, middleware.ErrorResponse{Error: msgDetailFailed})
			return
		}
		respondError(c, err)
		return
	}

	saved, err := h.collectionService.IsSaved(ctx, recipe.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeDetailResponse{Recipe: recipe, Saved: saved})
}
