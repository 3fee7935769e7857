package types

import (
	"encoding/json"
	"fmt"
)

// Defaults applied to recipes that come from TheMealDB, which has no timing
// or yield data.
const (
	DefaultReadyInMinutes = 30
	DefaultServings       = 4
	PlaceholderImage      = "https://via.placeholder.com/400x300?text=No+Image"
)

// CandidateRecipe is a search hit. For ingredient searches MatchedIngredients
// lists, in discovery order, every term whose lookup returned this recipe and
// UsedIngredientCount always equals its length.
type CandidateRecipe struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	Image                 string   `json:"image"`
	ReadyInMinutes        int      `json:"readyInMinutes"`
	Servings              int      `json:"servings"`
	Cuisines              []string `json:"cuisines"`
	MatchedIngredients    []string `json:"matchedIngredients"`
	UsedIngredientCount   int      `json:"usedIngredientCount"`
	MissedIngredientCount int      `json:"missedIngredientCount"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Recipe is the element format of the saved collection. Category, Area,
// YouTube and Source are only present on recipes fetched from TheMealDB.
type Recipe struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Image          string       `json:"image"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	Servings       int          `json:"servings"`
	Cuisines       []string     `json:"cuisines"`
	Summary        string       `json:"summary"`
	Instructions   string       `json:"instructions"`
	Ingredients    []Ingredient `json:"ingredients"`
	DateAdded      string       `json:"dateAdded,omitempty"`
	Category       string       `json:"category,omitempty"`
	Area           string       `json:"area,omitempty"`
	YouTube        string       `json:"youtube,omitempty"`
	Source         string       `json:"source,omitempty"`
}

// UnmarshalJSON accepts the id as a JSON string or number. The web client
// stamped its own recipes with Date.now(), so older collections hold
// numeric ids.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	type plain Recipe
	aux := struct {
		ID json.RawMessage `json:"id"`
		*plain
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("recipe id must be a string or number: %s", raw)
	}
	return n.String(), nil
}

// ShoppingItem is one row of the shopping list.
type ShoppingItem struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Unit    string `json:"unit"`
	Checked bool   `json:"checked"`
}

// ShoppingList splits the items the way the list is displayed.
type ShoppingList struct {
	Unchecked []ShoppingItem `json:"unchecked"`
	Checked   []ShoppingItem `json:"checked"`
}
