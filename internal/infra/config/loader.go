// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/aandersen/safe-rsync/internal/domain"
)

// Loader loads configuration from the TOML config file.
type Loader struct {
	confDir string // Path to the safe-rsync config directory
}

// NewLoader creates a new Loader using the default config directory
// ($XDG_CONFIG_HOME/safe-rsync, falling back to ~/.config/safe-rsync).
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "safe-rsync")
}

// Load returns the configuration, with file values layered over defaults.
// A missing file is not an error; defaults apply.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	path := filepath.Join(l.confDir, domain.ConfigFileName)
	data, err := os.ReadFile(path) // #nosec G304 - path is derived from the user's own config dir
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return merge(base, &file), nil
}

// merge overlays non-empty file values onto the defaults.
func merge(base, file *domain.Config) *domain.Config {
	out := *base
	if file.Rsync.Path != "" {
		out.Rsync.Path = file.Rsync.Path
	}
	if file.Rsync.MinVersion != "" {
		out.Rsync.MinVersion = file.Rsync.MinVersion
	}
	if len(file.Rsync.ExtraArgs) > 0 {
		out.Rsync.ExtraArgs = file.Rsync.ExtraArgs
	}
	if file.Backup.Prefix != "" {
		out.Backup.Prefix = file.Backup.Prefix
	}
	if file.Log.Level != "" {
		out.Log.Level = file.Log.Level
	}
	return &out
}
