package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExpiry)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_CORS_ORIGINS", "https://app.example.com")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("JWT_REFRESH_EXPIRY", "24h")
	t.Setenv("DATABASE_SSLMODE", "require")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://app.example.com", cfg.Server.CORSOrigins)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}

func TestLoadFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: \"7070\"\n  cors_origins: \"https://file.example.com\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Env overlays the file; untouched file values stay.
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://file.example.com", cfg.Server.CORSOrigins)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "app", Password: "pw", Name: "appointments", SSLMode: "disable",
	}}
	assert.Equal(t,
		"host=db user=app password=pw dbname=appointments port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
