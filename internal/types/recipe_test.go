package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeUnmarshalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"string id", `{"id":"52940","title":"Brown Stew Chicken"}`, "52940", false},
		{"numeric id", `{"id":1712345678901,"title":"Nan's Pie"}`, "1712345678901", false},
		{"null id", `{"id":null,"title":"Untitled"}`, "", false},
		{"missing id", `{"title":"Untitled"}`, "", false},
		{"object id", `{"id":{"v":1},"title":"Bad"}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Recipe
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
			assert.NotEmpty(t, r.Title)
		})
	}
}

func TestRecipeUnmarshalKeepsFields(t *testing.T) {
	var r Recipe
	err := json.Unmarshal([]byte(`{"id":7,"title":"Soup","servings":2,"cuisines":["Thai"],"ingredients":[{"name":"Lime","amount":"1","unit":""}],"dateAdded":"2024-04-05"}`), &r)
	require.NoError(t, err)

	assert.Equal(t, "7", r.ID)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, []string{"Thai"}, r.Cuisines)
	assert.Equal(t, []Ingredient{{Name: "Lime", Amount: "1"}}, r.Ingredients)
	assert.Equal(t, "2024-04-05", r.DateAdded)
}
