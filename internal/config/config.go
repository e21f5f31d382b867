// Package config reads flashdeck settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config controls runtime behavior for the CLI and TUI.
type Config struct {
	DecksDir string `json:"decksDir" env:"FLASHDECK_DIR" env-default:"decks" env-description:"Directory scanned for *.csv decks"`
	Format   string `json:"format" env:"FLASHDECK_FORMAT" env-default:"json" env-description:"CLI output format (json|edn)"`
	Measure  string `json:"measure" env:"FLASHDECK_MEASURE" env-default:"cells" env-description:"Text width measurer (cells|heuristic)"`

	Log LogConfig `json:"log"`
	TUI TUIConfig `json:"tui"`
}

type LogConfig struct {
	Path   string `json:"path" env:"FLASHDECK_LOG" env-description:"Log file path (empty disables logging)"`
	Level  string `json:"level" env:"FLASHDECK_LOG_LEVEL" env-default:"info" env-description:"debug|info|warn|error"`
	Format string `json:"format" env:"FLASHDECK_LOG_FORMAT" env-default:"text" env-description:"text|json|logfmt"`
}

type TUIConfig struct {
	Theme  string `json:"theme" env:"FLASHDECK_TUI_THEME" env-default:"auto" env-description:"light|dark|auto"`
	Glyphs string `json:"glyphs" env:"FLASHDECK_TUI_GLYPHS" env-default:"unicode" env-description:"unicode|ascii"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		DecksDir: "decks",
		Format:   "json",
		Measure:  "cells",
		Log:      LogConfig{Level: "info", Format: "text"},
		TUI:      TUIConfig{Theme: "auto", Glyphs: "unicode"},
	}
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate normalizes enum values and fills empty ones with defaults.
func (c *Config) Validate() error {
	def := Default()

	c.DecksDir = strings.TrimSpace(c.DecksDir)
	if c.DecksDir == "" {
		c.DecksDir = def.DecksDir
	}

	var err error
	if c.Format, err = oneOf("format", c.Format, def.Format, "json", "edn"); err != nil {
		return err
	}
	if c.Measure, err = oneOf("measure", c.Measure, def.Measure, "cells", "heuristic"); err != nil {
		return err
	}
	if c.Log.Level, err = oneOf("log level", c.Log.Level, def.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if c.Log.Format, err = oneOf("log format", c.Log.Format, def.Log.Format, "text", "json", "logfmt"); err != nil {
		return err
	}
	if c.TUI.Theme, err = oneOf("tui theme", c.TUI.Theme, def.TUI.Theme, "auto", "light", "dark"); err != nil {
		return err
	}
	if c.TUI.Glyphs, err = oneOf("tui glyphs", c.TUI.Glyphs, def.TUI.Glyphs, "unicode", "ascii"); err != nil {
		return err
	}
	return nil
}

// Usage describes the supported environment variables.
func Usage() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}

func oneOf(field, v, def string, allowed ...string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def, nil
	}
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q (want %s)", field, v, strings.Join(allowed, "|"))
}
