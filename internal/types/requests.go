package types

// CreateRecipeRequest is the body of a user-authored recipe. Cuisines is a
// comma separated list, as typed into the form.
type CreateRecipeRequest struct {
	Title          string       `json:"title" binding:"required"`
	ReadyInMinutes int          `json:"readyInMinutes" binding:"gte=0"`
	Servings       int          `json:"servings" binding:"gte=0"`
	Cuisines       string       `json:"cuisines"`
	Summary        string       `json:"summary"`
	Instructions   string       `json:"instructions"`
	Image          string       `json:"image"`
	Ingredients    []Ingredient `json:"ingredients"`
}

// AddShoppingItemRequest is the body for adding one shopping list item.
type AddShoppingItemRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// IngredientSearchResponse is returned by the ingredient search endpoint.
// FailedTerms lists the terms whose lookup errored and therefore contributed
// no candidates.
type IngredientSearchResponse struct {
	Recipes     []CandidateRecipe `json:"recipes"`
	FailedTerms []string          `json:"failedTerms"`
}

// RecipeDetailResponse wraps a recipe with whether it is in the collection.
type RecipeDetailResponse struct {
	Recipe *Recipe `json:"recipe"`
	Saved  bool    `json:"saved"`
}
