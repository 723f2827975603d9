package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Version  int            `toml:"version"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	LLM      LLMConfig      `toml:"llm"`
	Planner  PlannerConfig  `toml:"planner"`
}

type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LLMConfig struct {
	Provider          string `toml:"provider"` // "anthropic" or "none"
	APIKey            string `toml:"api_key"`
	Model             string `toml:"model"`
	MinCallIntervalMS int    `toml:"min_call_interval_ms"`
}

type PlannerConfig struct {
	DefaultPostsPerWeek int    `toml:"default_posts_per_week"`
	AutoplanSchedule    string `toml:"autoplan_schedule"` // cron spec; empty disables
	Timezone            string `toml:"timezone"`
}

// Providers for LLMConfig.Provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Version: 1,
		Server: ServerConfig{
			ListenAddr: ":8080",
		},
		Database: DatabaseConfig{},
		LLM: LLMConfig{
			Provider:          ProviderNone,
			Model:             "claude-sonnet-4-20250514",
			MinCallIntervalMS: 1500,
		},
		Planner: PlannerConfig{
			DefaultPostsPerWeek: 7,
			AutoplanSchedule:    "0 9 * * 1",
			Timezone:            "America/New_York",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "reddit-mastermind"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultDatabasePath returns where the sqlite database lives when the
// config doesn't set one.
func DefaultDatabasePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mastermind.db"), nil
}

// Load reads config from disk, creating a default file on first run. A .env
// file and the ANTHROPIC_API_KEY environment variable override the stored
// API key so secrets can stay out of the config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	// Best effort; a missing .env is fine.
	_ = godotenv.Load()
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
		if cfg.LLM.Provider == ProviderNone {
			cfg.LLM.Provider = ProviderAnthropic
		}
	}

	if cfg.Database.Path == "" {
		dbPath, err := DefaultDatabasePath()
		if err != nil {
			return nil, err
		}
		cfg.Database.Path = dbPath
	}

	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
