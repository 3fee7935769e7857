package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

// CollectionHandler serves the "My Recipes" collection.
type CollectionHandler struct {
	collectionService service.ICollectionService
}

func NewCollectionHandler(collectionService service.ICollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/my-recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.POST("/:id", h.SaveRecipe)
		recipes.DELETE("/:id", h.RemoveRecipe)
	}
}

// ListRecipes handles GET /my-recipes?filter=italian.
func (h *CollectionHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.collectionService.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		respondError(c, err)
		return
	}
	if recipes == nil {
		recipes = []types.Recipe{}
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// CreateRecipe stores a recipe written by the user.
func (h *CollectionHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	recipe, err := h.collectionService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe": recipe,
	})
}

// SaveRecipe adds a recipe found by search to the collection. Saving one that
// is already there answers 200 with saved false.
func (h *CollectionHandler) SaveRecipe(c *gin.Context) {
	recipe, added, err := h.collectionService.SaveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"recipe": recipe,
		"saved":  added,
	})
}

func (h *CollectionHandler) RemoveRecipe(c *gin.Context) {
	if err := h.collectionService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
