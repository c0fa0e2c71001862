//go:build integration
// +build integration

package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/nuitinfo/podium-live/internal/database/config"
	"github.com/nuitinfo/podium-live/internal/database/migrate"
	"github.com/nuitinfo/podium-live/internal/seed"
	"github.com/nuitinfo/podium-live/internal/team/repository"
)

// TestPostgresRoundTrip connects to a disposable PostgreSQL instance, runs
// the real migrations, seeds the demo roster and reads it back ranked.
func TestPostgresRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("podium_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	defer func() {
		_ = pgContainer.Terminate(ctx)
	}()

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	os.Setenv("DB_RETRY_MAX_ATTEMPTS", "5")
	defer os.Unsetenv("DB_RETRY_MAX_ATTEMPTS")

	db, err := NewWithConfig(config.Config{
		Host:     host,
		User:     "testuser",
		Password: "testpass",
		DBName:   "podium_test",
		Port:     port.Port(),
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	require.NoError(t, err)
	defer func() {
		_ = Close(db)
	}()

	require.NoError(t, HealthCheck(ctx, db))

	os.Setenv("MIGRATIONS_PATH", "../../../migrations")
	defer os.Unsetenv("MIGRATIONS_PATH")
	require.NoError(t, migrate.Migrate(db))

	logger := zap.NewNop().Sugar()
	require.NoError(t, seed.Run(ctx, db, logger))

	repo := repository.New(db, logger)
	teams, err := repo.ListRanked(ctx)
	require.NoError(t, err)
	require.Len(t, teams, len(seed.DemoTeams))
	assert.Equal(t, "Les Null Pointers", teams[0].Name)
	assert.Equal(t, 420, teams[0].Score)

	// Atomic increment against a real PostgreSQL backend.
	updated, err := repo.IncrementScore(ctx, teams[0].ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 450, updated.Score)
}
