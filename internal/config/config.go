// Package config loads and validates the pigment configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Config holds user-configurable defaults for the CLI. Flags override
// whatever is set here.
type Config struct {
	// Format is the default output format.
	Format string `toml:"format" validate:"oneof=hex rgb json"`

	// Preview enables terminal colour swatches by default.
	Preview bool `toml:"preview"`

	// Resize is the edge length images are downscaled to before
	// extraction. 0 disables downscaling.
	Resize int `toml:"resize" validate:"min=0,max=4096"`

	// Iterations is the number of centroid refinement passes.
	Iterations int `toml:"iterations" validate:"min=1,max=64"`

	// CacheRemote persists downloaded remote images in the local cache.
	CacheRemote bool `toml:"cache_remote"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:     "hex",
		Preview:    false,
		Resize:     0,
		Iterations: 5,
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(configDir, "pigment", "config.toml"), nil
}

// Load reads the configuration from path. An empty path uses DefaultPath;
// a missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
