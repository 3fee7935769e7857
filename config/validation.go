package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded values are usable
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if cfg.StoragePath == "" {
		errors = append(errors, ValidationError{Field: "STORAGE_PATH", Message: "must not be empty"}.Error())
	}

	if u, err := url.Parse(cfg.MealDBBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{Field: "MEALDB_BASE_URL", Message: fmt.Sprintf("invalid URL %q", cfg.MealDBBaseURL)}.Error())
	}

	if cfg.MealDBTimeout <= 0 {
		errors = append(errors, ValidationError{Field: "MEALDB_TIMEOUT", Message: "must be positive"}.Error())
	}

	if cfg.CacheEnabled() && cfg.CacheTTL <= 0 {
		errors = append(errors, ValidationError{Field: "CACHE_TTL", Message: "must be positive when the cache is enabled"}.Error())
	}

	if cfg.SearchRateLimit < 0 {
		errors = append(errors, ValidationError{Field: "SEARCH_RATE_LIMIT", Message: "must not be negative"}.Error())
	}

	// Production binds wherever it is told to, but must not fall back to wildcard CORS
	if cfg.Environment == Production {
		for _, origin := range cfg.CORSAllowedOrigins {
			if origin == "*" {
				errors = append(errors, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: "wildcard origin is not allowed in production"}.Error())
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
