package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/existflow/timeline/internal/logger"
	"github.com/existflow/timeline/internal/model"
	"gopkg.in/yaml.v3"
)

// Config holds user preferences. Values come from
// ~/.timeline/config.yaml, overridden by TIMELINE_* environment
// variables, overridden by CLI flags.
type Config struct {
	DataFile         string `yaml:"data_file" env:"TIMELINE_DATA_FILE"`                   // Path to the sqlite data file
	DefaultColor     string `yaml:"default_color" env:"TIMELINE_DEFAULT_COLOR"`           // Color for new activities
	ConfirmDelete    bool   `yaml:"confirm_delete" env:"TIMELINE_CONFIRM_DELETE"`         // Require confirmation for destructive operations
	ShowPreviousDays bool   `yaml:"show_previous_days" env:"TIMELINE_SHOW_PREVIOUS_DAYS"` // Render the prior two days on startup
	Compact          bool   `yaml:"compact" env:"TIMELINE_COMPACT"`                       // Start the TUI in compact mode

	// Logging configuration
	LogLevel   string `yaml:"log_level" env:"TIMELINE_LOG_LEVEL"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" env:"TIMELINE_LOG_FILE"`       // Path to log file
	LogConsole bool   `yaml:"log_console" env:"TIMELINE_LOG_CONSOLE"` // Enable console logging
}

// DefaultConfig returns default settings.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataPath := ""
	if home != "" {
		dataPath = filepath.Join(home, ".timeline", "timeline.db")
	}
	lc := logger.DefaultConfig()

	return &Config{
		DataFile:      dataPath,
		DefaultColor:  model.DefaultColor,
		ConfirmDelete: true,
		LogLevel:      lc.Level,
		LogFile:       lc.FilePath,
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".timeline", "config.yaml"), nil
}

// Load reads ~/.timeline/config.yaml and applies environment overrides.
// A missing file yields the defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Save writes the config to ~/.timeline/config.yaml.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
