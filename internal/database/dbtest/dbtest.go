package dbtest

import (
	"testing"
	"time"

	"movies-admin/internal/config"
	"movies-admin/internal/database"

	"github.com/stretchr/testify/require"
)

// New opens a migrated in-memory sqlite catalog. A single pooled
// connection keeps every query on the same in-memory database.
func New(t testing.TB) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		DBName:       "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
