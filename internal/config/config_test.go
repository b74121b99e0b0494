package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads values from file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
http-port: "9000"
socket-port: "9001"
storage:
  driver: memory
  game-ttl: 30m
redis:
  host: redis
  port: "6380"
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: every value is read
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9000", conf.HTTPPort)
		assert.Equal(t, "9001", conf.SocketPort)
		assert.Equal(t, StorageMemory, conf.Storage.Driver)
		assert.Equal(t, 30*time.Minute, conf.Storage.GameTTL)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: info\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: defaults are applied
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, StorageRedis, conf.Storage.Driver)
		assert.Equal(t, 24*time.Hour, conf.Storage.GameTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
