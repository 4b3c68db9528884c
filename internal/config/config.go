// Package config loads tracker settings from a YAML file, a .env file and
// TRACKER_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDBPath   = "TRACKER_DB_PATH"
	EnvLogLevel = "TRACKER_LOG_LEVEL"
	EnvLogFile  = "TRACKER_LOG_FILE"
	EnvUser     = "TRACKER_USER"
)

// DotEnvFile is read from the working directory before the environment is consulted
const DotEnvFile = ".env"

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	User     UserConfig     `yaml:"user"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	// Path of the database file; empty means ~/.tracker/tracker.db
	Path string `yaml:"path"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	// File receives the logs; empty means ~/.tracker/logs/tracker.log
	File string `yaml:"file"`
}

// UserConfig names the account commands act as when --as is not given
type UserConfig struct {
	Email string `yaml:"email"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// ParseError is returned when a config file exists but cannot be read or parsed
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		config.applyEnv()
		return config, nil
	}

	return LoadFile(configPath)
}

// LoadFile loads config from path, then applies defaults and environment
// overrides. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, &ParseError{Path: path, Err: err}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	config.applyDefaults()
	config.applyEnv()
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tracker", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tracker", "config.yaml"), nil
}

// loadDotEnv copies variables from a .env file into the process environment
// without overriding variables that are already set
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// applyEnv lets TRACKER_* variables override the file
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		c.User.Email = v
	}
}
