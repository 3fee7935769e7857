package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipefinder/backend/internal/logger"
)

const cacheKeyPrefix = "mealdb:"

// CachedClient stores TheMealDB responses in Redis. Cache failures never fail
// a query: they are logged and the upstream Lookup is asked instead.
type CachedClient struct {
	next   Lookup
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedClient wraps next with a Redis cache whose entries expire after ttl.
func NewCachedClient(next Lookup, redisClient *redis.Client, ttl time.Duration, log *zap.Logger) *CachedClient {
	return &CachedClient{
		next:   next,
		redis:  redisClient,
		ttl:    ttl,
		logger: logger.OrNop(log),
	}
}

func (c *CachedClient) SearchByName(ctx context.Context, term string) ([]Meal, error) {
	return c.cached(ctx, "search:"+normalizeKey(term), func() ([]Meal, error) {
		return c.next.SearchByName(ctx, term)
	})
}

func (c *CachedClient) FilterByArea(ctx context.Context, area string) ([]Meal, error) {
	return c.cached(ctx, "area:"+normalizeKey(area), func() ([]Meal, error) {
		return c.next.FilterByArea(ctx, area)
	})
}

func (c *CachedClient) LookupByID(ctx context.Context, id string) (*Meal, error) {
	meals, err := c.cached(ctx, "lookup:"+strings.TrimSpace(id), func() ([]Meal, error) {
		meal, err := c.next.LookupByID(ctx, id)
		if err != nil || meal == nil {
			return nil, err
		}
		return []Meal{*meal}, nil
	})
	if err != nil || len(meals) == 0 {
		return nil, err
	}
	return &meals[0], nil
}

func (c *CachedClient) cached(ctx context.Context, key string, fetch func() ([]Meal, error)) ([]Meal, error) {
	key = cacheKeyPrefix + key

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var meals []Meal
		if err := json.Unmarshal(data, &meals); err == nil {
			return meals, nil
		}
		c.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	meals, err := fetch()
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []Meal{}
	}

	data, err = json.Marshal(meals)
	if err != nil {
		c.logger.Warn("failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return meals, nil
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return meals, nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
