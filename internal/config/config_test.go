package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")
	t.Setenv("MINIO_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.App.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.MinIO.Enabled)
	assert.True(t, cfg.App.SeedGenres)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("SEED_GENRES", "false")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.App.SeedGenres)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestValidateMinIO(t *testing.T) {
	t.Setenv("MINIO_ENABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "")

	cfg := Load()

	err := cfg.Validate()
	assert.EqualError(t, err, "AWS_ACCESS_KEY_ID is required for MinIO")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable TimeZone=UTC connect_timeout=10", d.DSN())
}
