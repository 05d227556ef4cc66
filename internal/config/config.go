// Package config loads and persists the application's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Data directories
	Data DataConfig `toml:"data"`

	// Results database
	Database DatabaseConfig `toml:"database"`

	// External double-dummy solver
	Solver SolverConfig `toml:"solver"`

	// Directory watching
	Watch WatchConfig `toml:"watch"`

	// General application settings
	App AppConfig `toml:"app"`
}

// DataConfig contains input and output locations.
type DataConfig struct {
	Dir        string `toml:"dir"`         // Directory holding .lin files
	ResultsDir string `toml:"results_dir"` // Directory for JSON session results
}

// DatabaseConfig contains the results database settings.
type DatabaseConfig struct {
	Path           string `toml:"path"`            // SQLite database path
	BackupDir      string `toml:"backup_dir"`      // Backup directory ("" = next to the database)
	BackupPassword string `toml:"backup_password"` // Encrypt backups when non-empty
}

// SolverConfig contains the double-dummy solver settings.
type SolverConfig struct {
	URL string `toml:"url"` // Solver endpoint; "" disables double-dummy analysis
}

// WatchConfig contains directory-watch settings.
type WatchConfig struct {
	Settle string `toml:"settle"` // Quiet period before a changed file is processed (e.g. "500ms")
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:        "data",
			ResultsDir: filepath.Join("data", "session_results"),
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "bridgemaster.db"),
		},
		Solver: SolverConfig{
			URL: "",
		},
		Watch: WatchConfig{
			Settle: "500ms",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".bridgemaster")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the default location. Returns the
// default config if no file exists yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path. A missing file
// yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default location.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if _, err := time.ParseDuration(c.Watch.Settle); err != nil {
		return fmt.Errorf("invalid watch settle %q: %w", c.Watch.Settle, err)
	}
	return nil
}

// GetWatchSettle returns the watch settle period as a duration.
func (c *Config) GetWatchSettle() (time.Duration, error) {
	return time.ParseDuration(c.Watch.Settle)
}
