// Package config loads recipebook settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/recipebook/internal/logging"
	"github.com/aretw0/recipebook/internal/presentation/tui"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (RECIPEBOOK_ADDR, ...).
const EnvPrefix = "RECIPEBOOK"

// Config holds the resolved settings.
type Config struct {
	Files     []string `mapstructure:"files"`
	Debug     bool     `mapstructure:"debug"`
	LogFormat string   `mapstructure:"log_format"`
	Addr      string   `mapstructure:"addr"`
	Style     string   `mapstructure:"style"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		LogFormat: string(logging.FormatText),
		Addr:      ":8080",
		Style:     tui.StyleAuto,
	}
}

// NewViper returns a viper instance with defaults and environment binding applied.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("addr", d.Addr)
	v.SetDefault("style", d.Style)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result.
// Lookup order when path is empty:
//  1. ./recipebook.yaml
//  2. ~/.config/recipebook/recipebook.yaml
//
// A missing config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("recipebook")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "recipebook"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Style {
	case tui.StyleAuto, tui.StyleDark, tui.StyleLight, tui.StyleNoTTY:
	default:
		return fmt.Errorf("invalid config: unknown style %q", c.Style)
	}
	return nil
}
