package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipefinder/backend/internal/logger"
	"github.com/pageza/recipefinder/backend/internal/mealdb"
	"github.com/pageza/recipefinder/backend/internal/types"
)

// SearchReport is the result of an ingredient search together with the terms
// whose lookup failed. A failed term contributes no candidates, exactly like
// a term that matched nothing.
type SearchReport struct {
	Candidates  []types.CandidateRecipe
	FailedTerms []string
}

// SearchService finds candidate recipes on TheMealDB.
type SearchService struct {
	lookup mealdb.Lookup
	logger *zap.Logger
}

// NewSearchService creates a new SearchService instance
func NewSearchService(lookup mealdb.Lookup, log *zap.Logger) *SearchService {
	return &SearchService{
		lookup: lookup,
		logger: logger.OrNop(log),
	}
}

// CleanTerms trims every term and drops the blank ones, keeping order.
func CleanTerms(terms []string) []string {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			cleaned = append(cleaned, term)
		}
	}
	return cleaned
}

// SearchByIngredients returns the recipes matching any of terms, ranked by how
// many terms matched each one.
func (s *SearchService) SearchByIngredients(ctx context.Context, terms []string) ([]types.CandidateRecipe, error) {
	report, err := s.SearchByIngredientsWithReport(ctx, terms)
	if err != nil {
		return nil, err
	}
	return report.Candidates, nil
}

// SearchByIngredientsWithReport looks every non-blank term up concurrently,
// waits for all lookups, then merges the responses in term order. Each recipe
// id yields one candidate whose MatchedIngredients lists every term that
// returned it. Candidates are ordered by UsedIngredientCount descending, ties
// keeping discovery order.
//
// A failing lookup only removes its own term. The batch fails with
// ErrTransportFailure when ctx ends before the lookups complete.
func (s *SearchService) SearchByIngredientsWithReport(ctx context.Context, terms []string) (*SearchReport, error) {
	cleaned := CleanTerms(terms)
	if len(cleaned) == 0 {
		return nil, ErrNoIngredients
	}

	type termResult struct {
		meals []mealdb.Meal
		err   error
	}
	results := make([]termResult, len(cleaned))

	var g errgroup.Group
	for i, term := range cleaned {
		i, term := i, term
		g.Go(func() error {
			meals, err := s.lookup.SearchByName(ctx, term)
			results[i] = termResult{meals: meals, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	report := &SearchReport{}
	positions := make(map[string]int)
	for i, res := range results {
		term := cleaned[i]
		if res.err != nil {
			s.logger.Warn("ingredient lookup failed", zap.String("term", term), zap.Error(res.err))
			report.FailedTerms = append(report.FailedTerms, term)
			continue
		}
		for _, meal := range res.meals {
			if pos, seen := positions[meal.ID]; seen {
				c := &report.Candidates[pos]
				c.MatchedIngredients = append(c.MatchedIngredients, term)
				c.UsedIngredientCount = len(c.MatchedIngredients)
				continue
			}
			positions[meal.ID] = len(report.Candidates)
			report.Candidates = append(report.Candidates, newCandidate(meal, term))
		}
	}

	sort.SliceStable(report.Candidates, func(a, b int) bool {
		return report.Candidates[a].UsedIngredientCount > report.Candidates[b].UsedIngredientCount
	})

	s.logger.Info("ingredient search",
		zap.Strings("terms", cleaned),
		zap.Int("candidates", len(report.Candidates)),
		zap.Int("failed_terms", len(report.FailedTerms)),
	)

	if len(report.Candidates) == 0 {
		return nil, ErrNoMatches
	}
	return report, nil
}

// SearchByName matches query against recipe names.
func (s *SearchService) SearchByName(ctx context.Context, query string) ([]types.CandidateRecipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	meals, err := s.lookup.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	return candidatesFromMeals(meals)
}

// SearchByCuisine lists the recipes of one cuisine (TheMealDB "area").
func (s *SearchService) SearchByCuisine(ctx context.Context, cuisine string) ([]types.CandidateRecipe, error) {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return nil, ErrEmptyQuery
	}
	meals, err := s.lookup.FilterByArea(ctx, cuisine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}
	candidates, err := candidatesFromMeals(meals)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i].Cuisines = []string{cuisine}
	}
	return candidates, nil
}

func candidatesFromMeals(meals []mealdb.Meal) ([]types.CandidateRecipe, error) {
	seen := make(map[string]bool, len(meals))
	candidates := make([]types.CandidateRecipe, 0, len(meals))
	for _, meal := range meals {
		if seen[meal.ID] {
			continue
		}
		seen[meal.ID] = true
		c := newCandidate(meal, "")
		c.MatchedIngredients = []string{}
		c.UsedIngredientCount = 0
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, ErrNoMatches
	}
	return candidates, nil
}

func newCandidate(meal mealdb.Meal, term string) types.CandidateRecipe {
	return types.CandidateRecipe{
		ID:                  meal.ID,
		Title:               meal.Name,
		Image:               meal.Thumbnail,
		ReadyInMinutes:      types.DefaultReadyInMinutes,
		Servings:            types.DefaultServings,
		Cuisines:            []string{},
		MatchedIngredients:  []string{term},
		UsedIngredientCount: 1,
	}
}
