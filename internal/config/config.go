package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ModePlay = "play"
	ModeSim  = "sim"
)

type Config struct {
	// Rounds per game, 1..12. Zero means ask interactively.
	Rounds int
	// Seed for the random source. Zero draws a fresh seed.
	Seed     uint64
	LogLevel slog.Level
	Mode     string
	// Games played back to back in sim mode.
	Games int
}

// Load reads the configuration from the environment. Variables missing from
// the environment are looked up in envFile when it exists.
func Load(envFile string) (Config, error) {
	file := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			file = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}
	envOr := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := file[key]; v != "" {
			return v
		}
		return fallback
	}

	c := Config{Mode: strings.ToLower(envOr("KOIKOI_MODE", ModePlay))}

	rounds, err := strconv.Atoi(envOr("KOIKOI_ROUNDS", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid KOIKOI_ROUNDS: %w", err)
	}
	c.Rounds = rounds

	c.Seed, err = strconv.ParseUint(envOr("KOIKOI_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid KOIKOI_SEED: %w", err)
	}

	c.Games, err = strconv.Atoi(envOr("KOIKOI_GAMES", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid KOIKOI_GAMES: %w", err)
	}

	c.LogLevel, err = ParseLogLevel(envOr("KOIKOI_LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

// Validate checks the ranges of every field.
func (c Config) Validate() error {
	if c.Rounds < 0 || c.Rounds > 12 {
		return fmt.Errorf("rounds must be between 1 and 12, got %d", c.Rounds)
	}
	if c.Mode != ModePlay && c.Mode != ModeSim {
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	if c.Mode == ModeSim && (c.Games < 1 || c.Rounds == 0) {
		return fmt.Errorf("sim mode needs rounds and at least one game")
	}
	return nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid KOIKOI_LOG_LEVEL %q", s)
	}
}
