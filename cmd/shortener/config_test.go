package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		expectedConfig := &Config{
			ServerAddress:      "localhost:8080",
			DatabaseDSN:        "",
			DatabaseDriver:     "pgx",
			RedisAddr:          "",
			LogLevel:           "INFO",
			PathLength:         8,
			MaxPathLength:      16,
			CountRegenerations: 5,
			ResponseCacheTTL:   30 * time.Second,
			RateLimit:          0,
			ShutdownTimeout:    10 * time.Second,
			Config:             "",
		}

		config, err := NewConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, expectedConfig, config)
	})

	t.Run("flags", func(t *testing.T) {
		config, err := NewConfig([]string{
			"-a", ":9090",
			"-d", "file:test.db",
			"--database-driver", "sqlite3",
			"-r", "localhost:6379",
			"-l", "debug",
			"--path-length", "4",
			"--max-path-length", "6",
			"--count-regenerations", "2",
			"--response-cache-ttl", "1m",
			"--rate-limit", "10",
			"--shutdown-timeout", "3s",
		})

		require.NoError(t, err)
		assert.Equal(t, ":9090", config.ServerAddress)
		assert.Equal(t, "file:test.db", config.DatabaseDSN)
		assert.Equal(t, "sqlite3", config.DatabaseDriver)
		assert.Equal(t, "localhost:6379", config.RedisAddr)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, uint(4), config.PathLength)
		assert.Equal(t, uint(6), config.MaxPathLength)
		assert.Equal(t, uint(2), config.CountRegenerations)
		assert.Equal(t, time.Minute, config.ResponseCacheTTL)
		assert.Equal(t, 10, config.RateLimit)
		assert.Equal(t, 3*time.Second, config.ShutdownTimeout)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", ":7070")
		t.Setenv("PATH_LENGTH", "10")
		t.Setenv("RESPONSE_CACHE_TTL", "5s")

		config, err := NewConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, ":7070", config.ServerAddress)
		assert.Equal(t, uint(10), config.PathLength)
		assert.Equal(t, 5*time.Second, config.ResponseCacheTTL)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", ":7070")

		config, err := NewConfig([]string{"-a", ":9090"})

		require.NoError(t, err)
		assert.Equal(t, ":9090", config.ServerAddress)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"server_address": ":6060",
			"log_level": "WARN",
			"max_path_length": 20
		}`), 0o600))
		t.Setenv("LOG_LEVEL", "ERROR")

		config, err := NewConfig([]string{"-c", path})

		require.NoError(t, err)
		assert.Equal(t, ":6060", config.ServerAddress)
		assert.Equal(t, "ERROR", config.LogLevel, "env overrides config file")
		assert.Equal(t, uint(20), config.MaxPathLength)
		assert.Equal(t, path, config.Config)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := NewConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := NewConfig([]string{"--unknown"})
		assert.Error(t, err)
	})
}
