// Package config handles the XDG configuration directory and config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "things2md"

	// FileName is the optional config file inside the config directory.
	FileName = "config.yaml"
)

// Config holds configuration paths and settings.
// Database and IncludeAll may come from the config file; command-line
// flags override them during dispatch.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Database overrides the Things database location.
	Database string `yaml:"database"`

	// IncludeAll exports completed and canceled tasks by default.
	IncludeAll bool `yaml:"include_all"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`
}

// New creates a Config from the default or specified config directory,
// applying settings from config.yaml if it exists. A missing file is not
// an error; an unreadable or malformed one is.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{Dir: dir}

	data, err := os.ReadFile(cfg.FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, FileName)
}
