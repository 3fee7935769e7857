// Package testdb provides real backing stores for tests: a throwaway SQLite
// local store and, when Docker is available, a Redis container.
package testdb

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/pageza/recipefinder/backend/config"
	"github.com/pageza/recipefinder/backend/internal/database"
	"github.com/pageza/recipefinder/backend/internal/storage"
)

// TestDB wraps a migrated local store in a temporary directory.
type TestDB struct {
	DB     *gorm.DB
	Config *config.Config
	Store  *storage.Local
}

// SetupTestDB opens a fresh, migrated SQLite store that is closed when the
// test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	log := zaptest.NewLogger(t)

	cfg := &config.Config{
		Environment:   config.Test,
		StoragePath:   filepath.Join(t.TempDir(), "recipefinder.db"),
		MealDBBaseURL: config.DefaultMealDBBaseURL,
		MealDBTimeout: time.Second,
	}

	db, err := database.New(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("Error closing test database: %v", err)
		}
	})
	require.NoError(t, database.RunMigrations(db, log))

	return &TestDB{
		DB:     db,
		Config: cfg,
		Store:  storage.NewLocal(db),
	}
}

// SetupRedis starts a Redis container and returns a connected client. The
// test is skipped in short mode or when Docker is not installed.
func SetupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

// UnreachableRedis returns a client pointed at a closed port that fails fast.
func UnreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}
