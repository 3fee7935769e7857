package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

type ShoppingListHandler struct {
	shoppingService service.IShoppingListService
}

func NewShoppingListHandler(shoppingService service.IShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{shoppingService: shoppingService}
}

func (h *ShoppingListHandler) RegisterRoutes(router *gin.RouterGroup) {
	list := router.Group("/shopping-list")
	{
		list.GET("", h.GetList)
		list.POST("", h.AddItem)
		list.DELETE("", h.ClearAll)
		list.DELETE("/checked", h.ClearChecked)
		list.POST("/recipes/:id", h.AddRecipe)
		list.PATCH("/:id/toggle", h.ToggleItem)
		list.DELETE("/:id", h.RemoveItem)
	}
}

func (h *ShoppingListHandler) GetList(c *gin.Context) {
	list, err := h.shoppingService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ShoppingListHandler) AddItem(c *gin.Context) {
	var req types.AddShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.shoppingService.Add(c.Request.Context(), req.Name, req.Amount, req.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AddRecipe copies every ingredient of a recipe onto the list.
func (h *ShoppingListHandler) AddRecipe(c *gin.Context) {
	items, err := h.shoppingService.AddRecipeIngredients(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"items": items,
	})
}

func (h *ShoppingListHandler) ToggleItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.shoppingService.Toggle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ShoppingListHandler) RemoveItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.shoppingService.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShoppingListHandler) ClearChecked(c *gin.Context) {
	removed, err := h.shoppingService.ClearChecked(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
	})
}

func (h *ShoppingListHandler) ClearAll(c *gin.Context) {
	if err := h.shoppingService.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid item id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
