// internal/testutil/postgres.go
package testutil

import (
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/marketplace-backend/internal/config"
	"github.com/javajoker/marketplace-backend/internal/database"
)

// NewPostgresDB runs a throwaway PostgreSQL container and returns a migrated
// connection pool with room for concurrent transactions. The test is skipped
// under -short or when no Docker daemon is reachable.
func NewPostgresDB(t testing.TB) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=marketplace",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=marketplace",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("failed to purge postgres container: %v", err)
		}
	})
	_ = resource.Expire(120)

	cfg := config.DatabaseConfig{
		Driver:       database.DriverPostgres,
		Host:         "localhost",
		Port:         resource.GetPort("5432/tcp"),
		User:         "marketplace",
		Password:     "secret",
		Database:     "marketplace",
		SSLMode:      "disable",
		MaxOpenConns: 16,
		MaxIdleConns: 8,
		MaxLifetime:  60,
		LogLevel:     "silent",
	}

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	require.NoError(t, pool.Retry(func() error {
		db, err = database.Initialize(cfg)
		return err
	}))
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.RunMigrations(db))
	return db
}
