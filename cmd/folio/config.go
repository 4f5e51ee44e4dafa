package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read from FOLIO_* environment variables.
// Command-line flags override them.
type Config struct {
	Content       string `env:"FOLIO_CONTENT"`
	Width         int    `env:"FOLIO_WIDTH"          envDefault:"1280"`
	Height        int    `env:"FOLIO_HEIGHT"         envDefault:"800"`
	ColorScheme   string `env:"FOLIO_COLOR_SCHEME"   envDefault:"auto"`
	Debug         bool   `env:"FOLIO_DEBUG"`
	LogLevel      string `env:"FOLIO_LOG_LEVEL"      envDefault:"info"`
	Script        string `env:"FOLIO_SCRIPT"`
	ScreenshotDir string `env:"FOLIO_SCREENSHOT_DIR" envDefault:"screenshots"`
}

// loadConfig parses the environment into a Config.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects sizes the layout cannot use.
func (c Config) Validate() error {
	if c.Width < 320 || c.Height < 240 {
		return fmt.Errorf("window size %dx%d is below the 320x240 minimum", c.Width, c.Height)
	}
	return nil
}

// parseLogLevel maps a level name to a slog level. Unknown names mean info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
