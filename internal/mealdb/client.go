// Package mealdb talks to TheMealDB public API and turns its responses into
// validated Meal records.
package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/internal/logger"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Lookup is the set of TheMealDB queries the rest of the application uses.
type Lookup interface {
	SearchByName(ctx context.Context, term string) ([]Meal, error)
	LookupByID(ctx context.Context, id string) (*Meal, error)
	FilterByArea(ctx context.Context, area string) ([]Meal, error)
}

// StatusError is returned when TheMealDB answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mealdb %s returned status %d", e.Endpoint, e.StatusCode)
}

// Client is an HTTP client for TheMealDB.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client rooted at baseURL (for example
// https://www.themealdb.com/api/json/v1/1).
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.OrNop(log),
	}
}

// SearchByName runs search.php?s=term, which matches meal names.
func (c *Client) SearchByName(ctx context.Context, term string) ([]Meal, error) {
	return c.list(ctx, "search.php", "s", term)
}

// FilterByArea runs filter.php?a=area. Results carry only id, name and thumbnail.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]Meal, error) {
	return c.list(ctx, "filter.php", "a", area)
}

// LookupByID runs lookup.php?i=id and returns nil when no meal has that id.
func (c *Client) LookupByID(ctx context.Context, id string) (*Meal, error) {
	meals, err := c.list(ctx, "lookup.php", "i", id)
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return &meals[0], nil
}

type mealsResponse struct {
	Meals []json.RawMessage `json:"meals"`
}

func (c *Client) list(ctx context.Context, endpoint, param, value string) ([]Meal, error) {
	reqURL := c.baseURL + "/" + endpoint + "?" + url.Values{param: {value}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build mealdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mealdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	var body mealsResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode mealdb %s response: %w", endpoint, err)
	}

	// "meals": null means no matches
	meals := make([]Meal, 0, len(body.Meals))
	for _, raw := range body.Meals {
		var meal Meal
		if err := json.Unmarshal(raw, &meal); err != nil {
			if errors.Is(err, ErrMissingID) {
				c.logger.Warn("skipping mealdb record without id", zap.String("endpoint", endpoint))
			} else {
				c.logger.Warn("skipping malformed mealdb record", zap.String("endpoint", endpoint), zap.Error(err))
			}
			continue
		}
		meals = append(meals, meal)
	}

	c.logger.Debug("mealdb query",
		zap.String("endpoint", endpoint),
		zap.String(param, value),
		zap.Int("meals", len(meals)),
	)
	return meals, nil
}
