package service

import "errors"

var (
	// ErrNoIngredients means every supplied ingredient term was blank.
	ErrNoIngredients = errors.New("please enter at least one ingredient")
	// ErrTransportFailure means the external recipe service could not be reached
	// for the request as a whole.
	ErrTransportFailure = errors.New("failed to fetch recipes")
	// ErrNoMatches means a valid search returned nothing.
	ErrNoMatches = errors.New("no recipes found")

	ErrEmptyQuery     = errors.New("search query is empty")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRecipe  = errors.New("invalid recipe")
	ErrEmptyItemName  = errors.New("item name is required")
	ErrItemNotFound   = errors.New("shopping list item not found")
)
