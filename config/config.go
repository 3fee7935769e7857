package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultMealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"
	defaultServerHost    = "127.0.0.1"
	defaultServerPort    = "8080"
	defaultStoragePath   = "recipefinder.db"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort         string
	ServerHost         string
	CORSAllowedOrigins []string

	// Local storage (SQLite file standing in for browser local storage)
	StoragePath string

	// TheMealDB configuration
	MealDBBaseURL string
	MealDBTimeout time.Duration

	// Redis configuration, used only for the lookup cache
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// SearchRateLimit caps search requests per client per minute when Redis
	// is configured. Zero disables the limit.
	SearchRateLimit int

	LogLevel string
}

// CacheEnabled reports whether enough Redis settings are present to build a client.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance from an optional .env file and the
// process environment.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(os.Getenv("ENV_FILE")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:        GetEnvironment(),
		ServerHost:         getEnv("SERVER_HOST", defaultServerHost),
		ServerPort:         getEnv("SERVER_PORT", defaultServerPort),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		StoragePath:        getEnv("STORAGE_PATH", defaultStoragePath),
		MealDBBaseURL:      strings.TrimRight(getEnv("MEALDB_BASE_URL", DefaultMealDBBaseURL), "/"),
		RedisURL:           os.Getenv("REDIS_URL"),
		RedisHost:          os.Getenv("REDIS_HOST"),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}

	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}

	var err error
	if cfg.MealDBTimeout, err = getDuration("MEALDB_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.SearchRateLimit, err = getInt("SEARCH_RATE_LIMIT", 60); err != nil {
		return nil, err
	}
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if cfg.RedisDB, err = strconv.Atoi(raw); err != nil {
			return nil, ValidationError{Field: "REDIS_DB", Message: fmt.Sprintf("not an integer: %q", raw)}
		}
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads key=value pairs from path (".env" when empty) without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("not a duration: %q", raw)}
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("not an integer: %q", raw)}
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
