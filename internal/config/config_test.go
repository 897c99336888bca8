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
	t.Run("Reads every field from the file", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
first-player: ai
pruning: full
no-color: true
redis:
  enabled: true
  host: cache
  port: "6380"
  ttl: 1h
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: all values are taken from the file
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, FirstPlayerAI, conf.FirstPlayer)
		assert.Equal(t, PruningFull, conf.Pruning)
		assert.True(t, conf.NoColor)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: warn\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: the remaining fields hold their defaults
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, FirstPlayerRandom, conf.FirstPlayer)
		assert.Equal(t, PruningPartial, conf.Pruning)
		assert.False(t, conf.NoColor)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an env override
		path := writeConfig(t, "first-player: ai\n")
		t.Setenv("FIRST_PLAYER", "human")

		// When: loading it
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, FirstPlayerHuman, conf.FirstPlayer)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yml")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Panics on an invalid value", func(t *testing.T) {
		path := writeConfig(t, "pruning: sometimes\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{LogLevel: "info", FirstPlayer: FirstPlayerRandom, Pruning: PruningPartial}
	}

	t.Run("Valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("Unknown log level", func(t *testing.T) {
		conf := valid()
		conf.LogLevel = "trace"

		assert.ErrorIs(t, conf.Validate(), ErrInvalidLogLevel)
	})

	t.Run("Unknown first player", func(t *testing.T) {
		conf := valid()
		conf.FirstPlayer = "both"

		assert.ErrorIs(t, conf.Validate(), ErrInvalidFirstPlayer)
	})

	t.Run("Unknown pruning", func(t *testing.T) {
		conf := valid()
		conf.Pruning = "none"

		assert.ErrorIs(t, conf.Validate(), ErrInvalidPruning)
	})
}
