// Package config resolves tool settings from three layers: built-in
// defaults, an optional TOML file in the user config dir, and environment
// variables, in that order of precedence (env wins).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all tool settings.
type Config struct {
	// Storage
	DataDir  string
	DataFile string

	// Operation log
	LogDir   string
	LogLevel string

	// Records
	DefaultCurrency string
}

// fileConfig mirrors the optional TOML config file.
type fileConfig struct {
	DataDir         string `toml:"data_dir"`
	DataFile        string `toml:"data_file"`
	LogDir          string `toml:"log_dir"`
	LogLevel        string `toml:"log_level"`
	DefaultCurrency string `toml:"default_currency"`
}

// Load resolves the configuration. A missing or empty config file is fine;
// a present but malformed one is reported.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:         "data",
		DataFile:        "expenses.json",
		LogDir:          "logs",
		LogLevel:        "info",
		DefaultCurrency: "BDT",
	}

	if err := cfg.applyFile(ConfigFilePath()); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.DataDir != "" {
		c.DataDir = fc.DataDir
	}
	if fc.DataFile != "" {
		c.DataFile = fc.DataFile
	}
	if fc.LogDir != "" {
		c.LogDir = fc.LogDir
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.DefaultCurrency != "" {
		c.DefaultCurrency = fc.DefaultCurrency
	}
	return nil
}

func (c *Config) applyEnv() {
	c.DataDir = getEnv("KHARCHA_DATA_DIR", c.DataDir)
	c.DataFile = getEnv("KHARCHA_DATA_FILE", c.DataFile)
	c.LogDir = getEnv("KHARCHA_LOG_DIR", c.LogDir)
	c.LogLevel = getEnv("KHARCHA_LOG_LEVEL", c.LogLevel)
	c.DefaultCurrency = getEnv("KHARCHA_CURRENCY", c.DefaultCurrency)
}

// DataPath returns the full path of the ledger file.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}

// LogPath returns the full path of the operation log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.LogDir, "kharcha.log")
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.DataFile) == "" {
		errs = append(errs, "data file name cannot be empty")
	}
	if strings.TrimSpace(c.DefaultCurrency) == "" {
		errs = append(errs, "default currency cannot be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel converts the configured level name. Validate first; unknown
// names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// ConfigFilePath returns the TOML config location: KHARCHA_CONFIG if set,
// otherwise <config dir>/kharcha/config.toml under XDG_CONFIG_HOME or
// ~/.config.
func ConfigFilePath() string {
	if p := os.Getenv("KHARCHA_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", "config.toml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "kharcha", "config.toml")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
