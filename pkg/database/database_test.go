package database

import (
	"io/fs"
	"testing"

	"video-catalog/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(utils.DatabaseConfig{
		Host:     "db",
		Port:     "6543",
		Name:     "catalog",
		User:     "admin",
		Password: "secret",
	})

	assert.Equal(t, "postgres://admin:secret@db:6543/catalog?sslmode=disable", dsn)
}

func TestDSNDefaultPort(t *testing.T) {
	dsn := DSN(utils.DatabaseConfig{Host: "localhost", Name: "catalog", User: "u", Password: "p"})

	assert.Contains(t, dsn, "@localhost:5432/")
}

func TestDSNEscapesCredentials(t *testing.T) {
	config := utils.DatabaseConfig{
		Host:     "db",
		Name:     "catalog",
		User:     "admin user",
		Password: `p@ss word'"/:?`,
	}

	parsed, err := pgxpool.ParseConfig(DSN(config))
	require.NoError(t, err)

	conn := parsed.ConnConfig
	assert.Equal(t, "db", conn.Host)
	assert.Equal(t, uint16(5432), conn.Port)
	assert.Equal(t, "catalog", conn.Database)
	assert.Equal(t, "admin user", conn.User)
	assert.Equal(t, `p@ss word'"/:?`, conn.Password)
}

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(Migrations(), "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{"00001_create_categories.sql", "00002_create_genres.sql"}, files)

	body, err := fs.ReadFile(Migrations(), "00001_create_categories.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "deleted_at")
}
