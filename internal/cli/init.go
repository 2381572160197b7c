// Package cli provides common initialization and rendering for the kharcha
// command. It consolidates the setup order used by cmd/kharcha: env file,
// config, logger, store.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"kharcha/internal/config"
	"kharcha/internal/log"
	"kharcha/internal/storage"
)

// LoadEnvFile loads the optional .env file. Errors are ignored silently;
// the file is a development convenience.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads and validates the configuration.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger initializes the operation log. Records go to the configured
// log file; if the file cannot be opened they fall back to stderr so
// operations stay observable. The returned closer releases the file.
func SetupLogger(cfg *config.Config) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if dir := filepath.Dir(cfg.LogPath()); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if f, err := os.OpenFile(cfg.LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
				w = f
				closer = func() { f.Close() }
			}
		}
	}

	return log.NewWriter(w, cfg.SlogLevel(), log.ComponentApp), closer
}

// InitStore creates the repository for the configured ledger file.
func InitStore(cfg *config.Config) (*storage.Repository, error) {
	repo, err := storage.New(cfg.DataPath())
	if err != nil {
		return nil, fmt.Errorf("initialize store at %s: %w", cfg.DataPath(), err)
	}
	return repo, nil
}
