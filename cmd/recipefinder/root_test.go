package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipefinder/backend/internal/service"
	"github.com/pageza/recipefinder/backend/internal/types"
)

const teriyaki = `{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strArea":"Japanese",` +
	`"strInstructions":"Preheat oven to 350.","strIngredient1":"soy sauce","strMeasure1":"3/4 cup"}`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_HOST", "")

	mealDB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case r.URL.Path == "/search.php" && q.Get("s") == "broken":
			w.WriteHeader(http.StatusInternalServerError)
		case r.URL.Path == "/search.php" && (q.Get("s") == "chicken" || q.Get("s") == "soy"):
			_, _ = w.Write([]byte(`{"meals":[` + teriyaki + `]}`))
		case r.URL.Path == "/lookup.php" && q.Get("i") == "52772":
			_, _ = w.Write([]byte(`{"meals":[` + teriyaki + `]}`))
		default:
			_, _ = w.Write([]byte(`{"meals":null}`))
		}
	}))
	t.Cleanup(mealDB.Close)

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--base-url", mealDB.URL,
		"--storage", filepath.Join(t.TempDir(), "store.db"),
	}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSearchCommand(t *testing.T) {
	t.Run("should rank ingredient matches", func(t *testing.T) {
		out, errOut, err := runCLI(t, "search", "chicken", "soy", "broken")
		require.NoError(t, err)
		assert.Contains(t, out, "52772")
		assert.Contains(t, out, "chicken, soy")
		assert.Contains(t, errOut, "lookup failed for broken")
	})

	t.Run("should print JSON", func(t *testing.T) {
		out, _, err := runCLI(t, "--json", "search", "chicken")
		require.NoError(t, err)

		var resp types.IngredientSearchResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, 1, resp.Recipes[0].UsedIngredientCount)
	})

	t.Run("should fail without ingredients", func(t *testing.T) {
		_, _, err := runCLI(t, "search", " ")
		assert.ErrorIs(t, err, service.ErrNoIngredients)
	})

	t.Run("should fail when nothing matches", func(t *testing.T) {
		_, _, err := runCLI(t, "search", "xyzzynotfood")
		assert.ErrorIs(t, err, service.ErrNoMatches)
	})
}

func TestShowCommand(t *testing.T) {
	out, _, err := runCLI(t, "show", "52772")
	require.NoError(t, err)
	assert.Contains(t, out, "Teriyaki Chicken Casserole (52772)")
	assert.Contains(t, out, "Cuisine: Japanese")
	assert.Contains(t, out, "3/4 cup soy sauce")

	_, _, err = runCLI(t, "show", "1")
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
}

func TestSuggestCommand(t *testing.T) {
	out, _, err := runCLI(t, "suggest", "cheese")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cheddar cheese", "Feta cheese", "Parmesan cheese"}, strings.Split(strings.TrimSpace(out), "\n"))
}
