package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/middleware"
	"github.com/pageza/recipefinder/backend/internal/service"
)

// Messages shown to users, worded as the web client has always shown them.
const (
	msgNoIngredients     = "Please enter at least one ingredient"
	msgNoIngredientMatch = "No recipes found with the provided ingredients. Try different ingredients."
	msgNoMatches         = "No recipes found"
	msgFetchFailed       = "Failed to fetch recipes. Please try again later."
	msgDetailFailed      = "Failed to fetch recipe details. Please try again."
	msgRecipeNotFound    = "Recipe not found"
	msgItemNotFound      = "Shopping list item not found"
	msgInternal          = "Internal Server Error"
)

// respondError maps a service error to its status and user message. The
// original error stays attached to the context for the request log.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, message := http.StatusInternalServerError, msgInternal
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		status, message = http.StatusBadRequest, msgNoIngredients
	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrEmptyItemName),
		errors.Is(err, service.ErrInvalidRecipe):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNoMatches):
		status, message = http.StatusNotFound, msgNoMatches
	case errors.Is(err, service.ErrRecipeNotFound):
		status, message = http.StatusNotFound, msgRecipeNotFound
	case errors.Is(err, service.ErrItemNotFound):
		status, message = http.StatusNotFound, msgItemNotFound
	case errors.Is(err, service.ErrTransportFailure):
		status, message = http.StatusBadGateway, msgFetchFailed
	}

	c.JSON(status, middleware.ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: err.Error()})
}
