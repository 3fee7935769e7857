package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipefinder/backend/internal/mealdb"
	"github.com/pageza/recipefinder/backend/internal/mocks"
	"github.com/pageza/recipefinder/backend/internal/types"
)

func meal(id, name string) mealdb.Meal {
	return mealdb.Meal{ID: id, Name: name, Thumbnail: "https://img/" + id + ".jpg"}
}

func ids(candidates []types.CandidateRecipe) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.ID
	}
	return out
}

func TestSearchByIngredients(t *testing.T) {
	ctx := context.Background()

	t.Run("should merge one recipe found by two terms", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "chicken").Return([]mealdb.Meal{meal("52940", "Brown Stew Chicken")}, nil)
		lookup.On("SearchByName", mock.Anything, "rice").Return([]mealdb.Meal{meal("52940", "Brown Stew Chicken")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByIngredients(ctx, []string{"chicken", "rice"})
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Equal(t, "52940", got[0].ID)
		assert.Equal(t, "Brown Stew Chicken", got[0].Title)
		assert.Equal(t, "https://img/52940.jpg", got[0].Image)
		assert.Equal(t, []string{"chicken", "rice"}, got[0].MatchedIngredients)
		assert.Equal(t, 2, got[0].UsedIngredientCount)
		assert.Equal(t, types.DefaultReadyInMinutes, got[0].ReadyInMinutes)
		assert.Equal(t, types.DefaultServings, got[0].Servings)
		lookup.AssertExpectations(t)
	})

	t.Run("should fail with no ingredients without calling the lookup", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByIngredients(ctx, []string{"", "  "})
		assert.ErrorIs(t, err, ErrNoIngredients)
		assert.Nil(t, got)
		lookup.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)

		_, err = svc.SearchByIngredients(ctx, nil)
		assert.ErrorIs(t, err, ErrNoIngredients)
	})

	t.Run("should fail with no matches when meals is null", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "xyzzynotfood").Return([]mealdb.Meal{}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		_, err := svc.SearchByIngredients(ctx, []string{"xyzzynotfood"})
		assert.ErrorIs(t, err, ErrNoMatches)
	})

	t.Run("should swallow a single failed lookup", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "chicken").Return(nil, errors.New("connection reset"))
		lookup.On("SearchByName", mock.Anything, "rice").Return([]mealdb.Meal{meal("52772", "Teriyaki Chicken Casserole")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		report, err := svc.SearchByIngredientsWithReport(ctx, []string{"chicken", "rice"})
		require.NoError(t, err)
		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "52772", report.Candidates[0].ID)
		assert.Equal(t, 1, report.Candidates[0].UsedIngredientCount)
		assert.Equal(t, []string{"rice"}, report.Candidates[0].MatchedIngredients)
		assert.Equal(t, []string{"chicken"}, report.FailedTerms)
	})

	t.Run("should report no matches when every lookup fails", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		_, err := svc.SearchByIngredients(ctx, []string{"chicken", "rice"})
		assert.ErrorIs(t, err, ErrNoMatches)
	})

	t.Run("should trim terms and skip blanks", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "beef").Return([]mealdb.Meal{meal("1", "Beef Wellington")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByIngredients(ctx, []string{"  beef ", "", "\t"})
		require.NoError(t, err)
		assert.Equal(t, []string{"beef"}, got[0].MatchedIngredients)
		lookup.AssertNumberOfCalls(t, "SearchByName", 1)
	})

	t.Run("should rank by match count and keep discovery order on ties", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "a").Return([]mealdb.Meal{meal("1", "One"), meal("2", "Two"), meal("3", "Three")}, nil)
		lookup.On("SearchByName", mock.Anything, "b").Return([]mealdb.Meal{meal("4", "Four"), meal("3", "Three")}, nil)
		lookup.On("SearchByName", mock.Anything, "c").Return([]mealdb.Meal{meal("2", "Two"), meal("3", "Three"), meal("5", "Five")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByIngredients(ctx, []string{"a", "b", "c"})
		require.NoError(t, err)

		assert.Equal(t, []string{"3", "2", "1", "4", "5"}, ids(got))
		assert.Equal(t, []string{"a", "b", "c"}, got[0].MatchedIngredients)
		assert.Equal(t, []string{"a", "c"}, got[1].MatchedIngredients)

		seen := map[string]bool{}
		for i, c := range got {
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
			assert.Equal(t, len(c.MatchedIngredients), c.UsedIngredientCount)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].UsedIngredientCount, c.UsedIngredientCount)
			}
		}
	})

	t.Run("should append repeated terms without deduplicating", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "egg").Return([]mealdb.Meal{meal("9", "Shakshuka")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByIngredients(ctx, []string{"egg", "egg"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"egg", "egg"}, got[0].MatchedIngredients)
		assert.Equal(t, 2, got[0].UsedIngredientCount)
		lookup.AssertNumberOfCalls(t, "SearchByName", 2)
	})

	t.Run("should fail the batch when the context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, mock.Anything).Return(nil, context.Canceled)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		_, err := svc.SearchByIngredients(cancelled, []string{"chicken", "rice"})
		assert.ErrorIs(t, err, ErrTransportFailure)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchByName(t *testing.T) {
	ctx := context.Background()

	t.Run("should return candidates without matched ingredients", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "curry").Return([]mealdb.Meal{meal("1", "Katsu Curry"), meal("1", "Katsu Curry"), meal("2", "Beef Curry")}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		got, err := svc.SearchByName(ctx, " curry ")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(got))
		assert.Empty(t, got[0].MatchedIngredients)
		assert.Zero(t, got[0].UsedIngredientCount)
	})

	t.Run("should reject a blank query", func(t *testing.T) {
		svc := NewSearchService(new(mocks.MockLookup), zaptest.NewLogger(t))
		_, err := svc.SearchByName(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("should surface lookup failures as transport failures", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "curry").Return(nil, errors.New("dial tcp: refused"))
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		_, err := svc.SearchByName(ctx, "curry")
		assert.ErrorIs(t, err, ErrTransportFailure)
	})

	t.Run("should report no matches", func(t *testing.T) {
		lookup := new(mocks.MockLookup)
		lookup.On("SearchByName", mock.Anything, "zzz").Return([]mealdb.Meal{}, nil)
		svc := NewSearchService(lookup, zaptest.NewLogger(t))

		_, err := svc.SearchByName(ctx, "zzz")
		assert.ErrorIs(t, err, ErrNoMatches)
	})
}

func TestSearchByCuisine(t *testing.T) {
	lookup := new(mocks.MockLookup)
	lookup.On("FilterByArea", mock.Anything, "Italian").Return([]mealdb.Meal{meal("52982", "Spaghetti alla Carbonara")}, nil)
	svc := NewSearchService(lookup, zaptest.NewLogger(t))

	got, err := svc.SearchByCuisine(context.Background(), "Italian")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Italian"}, got[0].Cuisines)

	_, err = svc.SearchByCuisine(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}
