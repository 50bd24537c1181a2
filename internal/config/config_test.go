package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ADMIN_PAGE_SIZE", "")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "content", cfg.Database.Schema)
	assert.Equal(t, 10, cfg.Catalog.AdminPageSize)
	assert.Equal(t, 50, cfg.Catalog.APIPageSize)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "catalog.db")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("API_PAGE_SIZE", "not-a-number")
	t.Setenv("AWS_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "catalog.db", cfg.Database.DSN())
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 50, cfg.Catalog.APIPageSize)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestPostgresDSNIncludesSearchPath(t *testing.T) {
	d := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "movies_database",
		SSLMode:  "disable",
		Schema:   "content",
	}

	dsn := d.DSN()

	assert.True(t, strings.HasPrefix(dsn, "host=db port=5432 user=app"))
	assert.Contains(t, dsn, "search_path=content,public")
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.MinIO.AccessKeyID = "key"
	cfg.MinIO.SecretAccessKey = "secret"
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	cfg.Catalog.AdminPageSize = 0
	assert.Error(t, cfg.Validate())
}
