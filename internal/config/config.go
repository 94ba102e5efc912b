package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/metaramp/rampctl/internal/errors"
)

const appName = "rampctl"

// Config is the tool configuration loaded from config.toml. Its values
// seed new ramp documents; each ramp then carries its own flags.
type Config struct {
	// SortOnChange is the default sort-on-change flag for new ramps.
	SortOnChange bool `toml:"sort_on_change"`

	// DeleteEnabled is the default delete-armed flag for new ramps.
	DeleteEnabled bool `toml:"delete_enabled"`

	// DefaultPosition is the position given to new keys when none is
	// specified.
	DefaultPosition float64 `toml:"default_position"`

	// StateDir overrides where ramp documents are stored.
	StateDir string `toml:"state_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultPosition: 0.5,
	}
}

// Paths holds the configured paths
type Paths struct {
	ConfigDir string
	StateDir  string
	RampsDir  string
}

// DefaultPaths returns the default path configuration. The environment
// variables RAMPCTL_CONFIG_DIR and RAMPCTL_STATE_DIR override the
// per-user defaults.
func DefaultPaths() *Paths {
	configDir := os.Getenv("RAMPCTL_CONFIG_DIR")
	if configDir == "" {
		if base, err := os.UserConfigDir(); err == nil {
			configDir = filepath.Join(base, appName)
		}
	}

	stateDir := os.Getenv("RAMPCTL_STATE_DIR")
	if stateDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			stateDir = filepath.Join(home, ".local", "state", appName)
		}
	}

	return &Paths{
		ConfigDir: configDir,
		StateDir:  stateDir,
		RampsDir:  filepath.Join(stateDir, "ramps"),
	}
}

// WithStateDir returns a copy of p rooted at the given state dir.
func (p *Paths) WithStateDir(stateDir string) *Paths {
	return &Paths{
		ConfigDir: p.ConfigDir,
		StateDir:  stateDir,
		RampsDir:  filepath.Join(stateDir, "ramps"),
	}
}

// Load reads config.toml from the config dir. A missing file yields the
// built-in defaults; a malformed file is a config error.
func Load(configDir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.ConfigError("failed to stat config", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.ConfigError("failed to parse config", err)
	}
	return cfg, nil
}
