package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// Environment variables that override the config file
const (
	EnvDatabase      = "DRAGBOARD_DB"
	EnvUser          = "DRAGBOARD_USER"
	EnvRemoteURL     = "DRAGBOARD_REMOTE_URL"
	EnvRemoteToken   = "DRAGBOARD_TOKEN"
	EnvServerAddr    = "DRAGBOARD_ADDR"
	EnvAllowedOrigin = "DRAGBOARD_ALLOWED_ORIGINS"
	EnvLogLevel      = "DRAGBOARD_LOG_LEVEL"
	EnvThemeFile     = "DRAGBOARD_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	User        string         `yaml:"user"`
	Server      ServerConfig   `yaml:"server"`
	Remote      RemoteConfig   `yaml:"remote"`
	Log         LogConfig      `yaml:"log"`
	Board       BoardConfig    `yaml:"board"`
	Drag        DragConfig     `yaml:"drag"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the local SQLite database
type DatabaseConfig struct {
	// Path defaults to ~/.dragboard/dragboard.db when empty
	Path string `yaml:"path"`
}

// ServerConfig configures `dragboard serve`
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RemoteConfig points the TUI and CLI at a remote API instead of the local database
type RemoteConfig struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether a remote API is configured
func (r RemoteConfig) Enabled() bool {
	return r.URL != ""
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// BoardConfig controls new boards
type BoardConfig struct {
	DefaultColumns []string `yaml:"default_columns"`
}

// DragConfig tunes pointer drags in the TUI
type DragConfig struct {
	// ActivationDistance is how many cells the pointer must travel while pressed
	// before a press becomes a drag. Nil means the default of 1.
	ActivationDistance *int `yaml:"activation_distance"`
}

// Distance returns the configured activation distance
func (d DragConfig) Distance() int {
	if d.ActivationDistance == nil || *d.ActivationDistance < 0 {
		return 1
	}
	return *d.ActivationDistance
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from DRAGBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load loads config from the user's config directory, then applies .env and
// DRAGBOARD_* overrides. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	config := &Config{}
	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
		}
	}

	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// The file may hold an API token
	return os.WriteFile(configPath, data, 0o600)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dragboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dragboard", "config.yaml"), nil
}

// Validate rejects settings the rest of the program cannot work with
func (c *Config) Validate() error {
	for _, title := range c.Board.DefaultColumns {
		if _, err := models.NormalizeColumnTitle(title); err != nil {
			return fmt.Errorf("invalid board.default_columns entry %q: %w", title, err)
		}
	}
	if c.Remote.Timeout < 0 {
		return fmt.Errorf("remote.timeout must not be negative")
	}
	if err := validatePreset(c.ColorScheme.Preset); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvUser); v != "" {
		c.User = v
	}
	if v := os.Getenv(EnvRemoteURL); v != "" {
		c.Remote.URL = v
	}
	if v := os.Getenv(EnvRemoteToken); v != "" {
		c.Remote.Token = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvAllowedOrigin); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Board.DefaultColumns == nil {
		c.Board.DefaultColumns = append([]string(nil), models.DefaultColumnTitles...)
	}
	if c.Drag.ActivationDistance == nil {
		d := 1
		c.Drag.ActivationDistance = &d
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
