package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Data.Dir != "data" {
		t.Errorf("Data.Dir = %q, want data", cfg.Data.Dir)
	}
	if cfg.Database.Path != filepath.Join("data", "bridgemaster.db") {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Solver.URL != "" {
		t.Errorf("Solver.URL = %q, want empty (disabled)", cfg.Solver.URL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}

	settle, err := cfg.GetWatchSettle()
	if err != nil {
		t.Fatalf("GetWatchSettle() failed: %v", err)
	}
	if settle != 500*time.Millisecond {
		t.Errorf("settle = %v, want 500ms", settle)
	}
}

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("Data.Dir = %q, want the default", cfg.Data.Dir)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
dir = "boards"

[solver]
url = "http://localhost:9000/solve"

[watch]
settle = "2s"

[app]
debug_mode = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Data.Dir != "boards" {
		t.Errorf("Data.Dir = %q, want boards", cfg.Data.Dir)
	}
	if cfg.Solver.URL != "http://localhost:9000/solve" {
		t.Errorf("Solver.URL = %q", cfg.Solver.URL)
	}
	if !cfg.App.DebugMode {
		t.Error("App.DebugMode = false, want true")
	}
	// Unset sections keep their defaults.
	if cfg.Database.Path != filepath.Join("data", "bridgemaster.db") {
		t.Errorf("Database.Path = %q, want the default", cfg.Database.Path)
	}

	settle, err := cfg.GetWatchSettle()
	if err != nil {
		t.Fatalf("GetWatchSettle() failed: %v", err)
	}
	if settle != 2*time.Second {
		t.Errorf("settle = %v, want 2s", settle)
	}
}

func TestLoadFromRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() accepted malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }},
		{"empty database path", func(c *Config) { c.Database.Path = "" }},
		{"bad settle", func(c *Config) { c.Watch.Settle = "soon" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}
