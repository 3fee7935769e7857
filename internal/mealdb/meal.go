package mealdb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxIngredients is the number of strIngredientN/strMeasureN slots TheMealDB exposes.
const maxIngredients = 20

// ErrMissingID is returned when a meal record carries no usable idMeal.
var ErrMissingID = errors.New("meal record has no idMeal")

// Ingredient is one filled ingredient slot of a meal.
type Ingredient struct {
	Name    string
	Measure string
}

// Meal is a TheMealDB record after validation. Search and filter endpoints
// only fill ID, Name and Thumbnail; lookup fills everything.
type Meal struct {
	ID           string
	Name         string
	Thumbnail    string
	Category     string
	Area         string
	Instructions string
	YouTube      string
	Source       string
	Ingredients  []Ingredient
}

// UnmarshalJSON parses the loosely typed TheMealDB shape. idMeal may be a
// string or a number and is required; every other field defaults to "".
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("meal record is not an object: %w", err)
	}
	if raw == nil {
		return ErrMissingID
	}

	id := scalar(raw["idMeal"])
	if id == "" {
		return ErrMissingID
	}

	*m = Meal{
		ID:           id,
		Name:         scalar(raw["strMeal"]),
		Thumbnail:    scalar(raw["strMealThumb"]),
		Category:     scalar(raw["strCategory"]),
		Area:         scalar(raw["strArea"]),
		Instructions: scalar(raw["strInstructions"]),
		YouTube:      scalar(raw["strYoutube"]),
		Source:       scalar(raw["strSource"]),
	}
	for i := 1; i <= maxIngredients; i++ {
		name := scalar(raw["strIngredient"+strconv.Itoa(i)])
		if name == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, Ingredient{
			Name:    name,
			Measure: scalar(raw["strMeasure"+strconv.Itoa(i)]),
		})
	}
	return nil
}

// MarshalJSON writes the meal back in TheMealDB's own shape so cached
// records decode through UnmarshalJSON unchanged.
func (m Meal) MarshalJSON() ([]byte, error) {
	out := map[string]string{
		"idMeal":          m.ID,
		"strMeal":         m.Name,
		"strMealThumb":    m.Thumbnail,
		"strCategory":     m.Category,
		"strArea":         m.Area,
		"strInstructions": m.Instructions,
		"strYoutube":      m.YouTube,
		"strSource":       m.Source,
	}
	for i, ing := range m.Ingredients {
		if i >= maxIngredients {
			break
		}
		out["strIngredient"+strconv.Itoa(i+1)] = ing.Name
		out["strMeasure"+strconv.Itoa(i+1)] = ing.Measure
	}
	return json.Marshal(out)
}

// scalar renders a JSON string or number as trimmed text. null, objects,
// arrays and booleans become "".
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}
