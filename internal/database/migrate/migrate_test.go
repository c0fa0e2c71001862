package migrate

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupMigrationsPath sets MIGRATIONS_PATH env var and returns cleanup function.
func setupMigrationsPath(t *testing.T, path string) func() {
	t.Helper()
	originalPath := os.Getenv("MIGRATIONS_PATH")
	os.Setenv("MIGRATIONS_PATH", path)
	return func() {
		if originalPath != "" {
			os.Setenv("MIGRATIONS_PATH", originalPath)
		} else {
			os.Unsetenv("MIGRATIONS_PATH")
		}
	}
}

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		cleanup := setupMigrationsPath(t, "")
		defer cleanup()
		os.Unsetenv("MIGRATIONS_PATH")

		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		cleanup := setupMigrationsPath(t, "custom/migrations")
		defer cleanup()

		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate_NilDatabase(t *testing.T) {
	err := Migrate(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database connection is nil")
}

func TestMigrate_MissingDirectory(t *testing.T) {
	cleanup := setupMigrationsPath(t, "/non/existent/path")
	defer cleanup()

	db := createTestDB(t)

	err := Migrate(db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory does not exist")
}

func TestMigrate_WrongDriver(t *testing.T) {
	// The migration runner expects a postgres connection. A sqlite handle
	// reaches the driver setup and fails there.
	cleanup := setupMigrationsPath(t, t.TempDir())
	defer cleanup()

	db := createTestDB(t)

	err := Migrate(db)
	assert.Error(t, err)
	assert.True(t,
		strings.Contains(err.Error(), "failed to create postgres driver") ||
			strings.Contains(err.Error(), "failed to create migrate instance"),
		"unexpected error: %s", err.Error())
}

func TestMigrate_ClosedConnection(t *testing.T) {
	db := createTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = Migrate(db)
	assert.Error(t, err)
}
