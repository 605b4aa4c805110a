// Package config loads the bot configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	// Discord bot token
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// Application ID for the bot
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Rolls kept per channel and how long an idle channel history lives
	HistoryLimit int           `env:"ROLL_HISTORY_LIMIT" envDefault:"25"`
	HistoryTTL   time.Duration `env:"ROLL_HISTORY_TTL" envDefault:"168h"`

	// MaxDice caps the number of dice in a single roll
	MaxDice int `env:"MAX_DICE" envDefault:"1000"`

	// DiceSeed fixes the random sequence, zero seeds from the clock
	DiceSeed int64 `env:"DICE_SEED"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads the given .env files, if present, and parses the environment.
// With no files it looks for ".env" in the working directory.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.HistoryLimit < 1 {
		return nil, fmt.Errorf("ROLL_HISTORY_LIMIT must be positive, got %d", cfg.HistoryLimit)
	}

	if cfg.MaxDice < 1 {
		return nil, fmt.Errorf("MAX_DICE must be positive, got %d", cfg.MaxDice)
	}

	return cfg, nil
}
