package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var ErrNoBotToken = errors.New("BOT_TOKEN is not set")

type Config struct {
	BotToken     string `env:"BOT_TOKEN"`
	DatabasePath string `env:"DATABASE_PATH,default=./sieteymedia.db"`
	LogLevel     string `env:"LOG_LEVEL,default=info"`
	Seed         int64  `env:"GAME_SEED,default=0"`
	TopLimit     int    `env:"TOP_LIMIT,default=10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	if cfg.TopLimit <= 0 {
		return nil, fmt.Errorf("TOP_LIMIT must be positive, got %d", cfg.TopLimit)
	}

	return cfg, nil
}

// RequireBotToken fails when the bot cannot authenticate.
func (c *Config) RequireBotToken() error {
	if c.BotToken == "" {
		return ErrNoBotToken
	}
	return nil
}
