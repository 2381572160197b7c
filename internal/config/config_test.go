package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid defaults",
			config: Config{
				DataDir:         "data",
				DataFile:        "expenses.json",
				LogDir:          "logs",
				LogLevel:        "info",
				DefaultCurrency: "BDT",
			},
			wantErr: false,
		},
		{
			name: "empty data file",
			config: Config{
				DataFile:        "  ",
				LogLevel:        "info",
				DefaultCurrency: "BDT",
			},
			wantErr:     true,
			errorString: "data file name cannot be empty",
		},
		{
			name: "empty currency",
			config: Config{
				DataFile:        "expenses.json",
				LogLevel:        "info",
				DefaultCurrency: "",
			},
			wantErr:     true,
			errorString: "default currency cannot be empty",
		},
		{
			name: "bad log level",
			config: Config{
				DataFile:        "expenses.json",
				LogLevel:        "loud",
				DefaultCurrency: "BDT",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KHARCHA_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	for _, key := range []string{"KHARCHA_DATA_DIR", "KHARCHA_DATA_FILE", "KHARCHA_LOG_DIR", "KHARCHA_LOG_LEVEL", "KHARCHA_CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataPath() != filepath.Join("data", "expenses.json") {
		t.Fatalf("unexpected data path %q", cfg.DataPath())
	}
	if cfg.DefaultCurrency != "BDT" {
		t.Fatalf("unexpected default currency %q", cfg.DefaultCurrency)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Fatalf("unexpected level %v", cfg.SlogLevel())
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
data_dir = "/tmp/ledger"
default_currency = "EUR"
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("KHARCHA_CONFIG", path)
	t.Setenv("KHARCHA_DATA_DIR", "")
	t.Setenv("KHARCHA_CURRENCY", "")
	t.Setenv("KHARCHA_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/tmp/ledger" {
		t.Fatalf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.DefaultCurrency != "EUR" {
		t.Fatalf("unexpected currency %q", cfg.DefaultCurrency)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("unexpected level %v", cfg.SlogLevel())
	}
	// The data file name keeps its default.
	if cfg.DataFile != "expenses.json" {
		t.Fatalf("unexpected data file %q", cfg.DataFile)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`default_currency = "EUR"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("KHARCHA_CONFIG", path)
	t.Setenv("KHARCHA_CURRENCY", "USD")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultCurrency != "USD" {
		t.Fatalf("expected env to win, got %q", cfg.DefaultCurrency)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not toml ==="), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("KHARCHA_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
