// Package config handles loading the tl.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jfaure/tasklist/list"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "TL_CONFIG"

// Config represents the tl.toml configuration file. Zero values mean
// "not configured"; flags always win over config.
type Config struct {
	// Dir is the directory where list documents are stored.
	// Defaults to the working directory when unset.
	Dir string `toml:"dir"`

	// DefaultPriority is the priority assigned to new items when no
	// --priority flag is given (low, medium, high, critical).
	DefaultPriority string `toml:"default-priority"`

	// Editor overrides $EDITOR for interactive item editing.
	Editor string `toml:"editor"`
}

// DefaultPath returns the default config location, ~/.config/tl/tl.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "tl", "tl.toml"), nil
}

// Load reads the config from $TL_CONFIG or the default path. A missing
// file is not an error; it yields the zero config.
func Load() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}
	return LoadFile(path)
}

// LoadFile reads the config from an explicit path. A missing file yields
// the zero config.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DefaultPriority != "" {
		if _, err := list.ParsePriority(c.DefaultPriority); err != nil {
			return fmt.Errorf("default-priority: %w", err)
		}
	}
	return nil
}
