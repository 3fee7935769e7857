package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipefinder/backend/internal/mealdb"
)

// MockLookup is a mock implementation of mealdb.Lookup
type MockLookup struct {
	mock.Mock
}

// SearchByName mocks the SearchByName method
func (m *MockLookup) SearchByName(ctx context.Context, term string) ([]mealdb.Meal, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealdb.Meal), args.Error(1)
}

// LookupByID mocks the LookupByID method
func (m *MockLookup) LookupByID(ctx context.Context, id string) (*mealdb.Meal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealdb.Meal), args.Error(1)
}

// FilterByArea mocks the FilterByArea method
func (m *MockLookup) FilterByArea(ctx context.Context, area string) ([]mealdb.Meal, error) {
	args := m.Called(ctx, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealdb.Meal), args.Error(1)
}
