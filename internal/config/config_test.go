package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "test_secret_key")
	t.Setenv("JWT_EXPIRES_IN", "12h")
	t.Setenv("PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.StorageConnectionString)
	assert.Equal(t, "test_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, ":8081", cfg.HTTPServer.Address())

	// значения по умолчанию
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "tasktracker", cfg.StorageName)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "mongodb://localhost:27017")
	// JWT_SECRET не задан

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_FromConfigFile(t *testing.T) {
	configContent := `
env: test
storage_connection_string: "mongodb://mongo:27017"
storage_name: "tasktracker_test"
cors_origin: "http://localhost:3000"
redis_connection:
  addressredis: "localhost:6379"
  db: 1
  max_retries: 3
  dial_timeout: 5s
  timeoutredis: 10s
http_server:
  port: "9090"
  timeouthttp: 30s
  idle_timeout: 60s
jwttoken:
  jwt_secret_key: "file_secret_key"
  token_ttl: 24h
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))
	t.Setenv("CONFIG_PATH", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "mongodb://mongo:27017", cfg.StorageConnectionString)
	assert.Equal(t, "tasktracker_test", cfg.StorageName)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address())
	assert.Equal(t, "file_secret_key", cfg.JWTSecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoad_ConfigFileDoesNotExist(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}
