package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	s := NewIngredientSuggester()

	assert.Equal(t, []string{}, s.Suggest("   "))
	assert.Equal(t, []string{"Cheddar cheese", "Feta cheese", "Parmesan cheese"}, s.Suggest("CHEESE"))
	assert.Equal(t, []string{"Brown sugar", "Garam masala", "Garlic", "Sugar", "Vinegar"}, s.Suggest("gar"))
	assert.Len(t, s.Suggest("c"), 5)
	assert.Empty(t, s.Suggest("xyzzy"))

	for _, got := range s.Suggest("chicken") {
		assert.Contains(t, got, "Chicken")
	}
}
