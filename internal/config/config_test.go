package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("DATABASE_PATH", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("GAME_SEED", "")
		t.Setenv("TOP_LIMIT", "")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "./sieteymedia.db", cfg.DatabasePath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, int64(0), cfg.Seed)
		assert.Equal(t, 10, cfg.TopLimit)
		assert.ErrorIs(t, cfg.RequireBotToken(), ErrNoBotToken)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("DATABASE_PATH", "/tmp/game.db")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("GAME_SEED", "42")
		t.Setenv("TOP_LIMIT", "5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "123:abc", cfg.BotToken)
		assert.Equal(t, "/tmp/game.db", cfg.DatabasePath)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 5, cfg.TopLimit)
		assert.NoError(t, cfg.RequireBotToken())
	})

	t.Run("bad values", func(t *testing.T) {
		t.Setenv("TOP_LIMIT", "0")
		_, err := Load()
		assert.Error(t, err)

		t.Setenv("TOP_LIMIT", "ten")
		_, err = Load()
		assert.Error(t, err)
	})
}
