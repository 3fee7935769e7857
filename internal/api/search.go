package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipefinder/backend/internal/middleware"
	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

// SearchHandler serves recipe searches and ingredient autocomplete.
type SearchHandler struct {
	searchService     service.ISearchService
	suggestionService service.ISuggestionService
	limiter           gin.HandlerFunc
}

// NewSearchHandler creates a SearchHandler. limiter may be nil.
func NewSearchHandler(searchService service.ISearchService, suggestionService service.ISuggestionService, limiter gin.HandlerFunc) *SearchHandler {
	return &SearchHandler{
		searchService:     searchService,
		suggestionService: suggestionService,
		limiter:           limiter,
	}
}

func (h *SearchHandler) RegisterRoutes(router *gin.RouterGroup) {
	search := router.Group("/search")
	{
		// Only name and cuisine searches are rate limited
		if h.limiter != nil {
			search.GET("", h.limiter, h.Search)
		} else {
			search.GET("", h.Search)
		}
		search.GET("/ingredients", h.SearchByIngredients)
	}

	router.GET("/ingredients/suggest", h.Suggest)
}

// SearchByIngredients handles GET /search/ingredients?i=chicken&i=rice.
func (h *SearchHandler) SearchByIngredients(c *gin.Context) {
	report, err := h.searchService.SearchByIngredientsWithReport(c.Request.Context(), c.QueryArray("i"))
	if err != nil {
		if errors.Is(err, service.ErrNoMatches) {
			_ = c.Error(err)
			c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: msgNoIngredientMatch})
			return
		}
		respondError(c, err)
		return
	}

	failed := report.FailedTerms
	if failed == nil {
		failed = []string{}
	}
	c.JSON(http.StatusOK, types.IngredientSearchResponse{
		Recipes:     report.Candidates,
		FailedTerms: failed,
	})
}

// Search handles GET /search?q=name or GET /search?cuisine=Italian.
func (h *SearchHandler) Search(c *gin.Context) {
	var (
		recipes []types.CandidateRecipe
		err     error
	)
	if cuisine, ok := c.GetQuery("cuisine"); ok {
		recipes, err = h.searchService.SearchByCuisine(c.Request.Context(), cuisine)
	} else {
		recipes, err = h.searchService.SearchByName(c.Request.Context(), c.Query("q"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// Suggest handles GET /ingredients/suggest?q=gar.
func (h *SearchHandler) Suggest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"suggestions": h.suggestionService.Suggest(c.Query("q")),
	})
}
