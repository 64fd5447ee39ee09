// Package config provides invocation defaults for the recolor CLI.
//
// Defaults are loaded from an optional TOML file. The file may set the
// white threshold and the suffix token used in derived output names;
// anything it omits keeps the built-in default. Command-line flags override
// whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/recolor/internal/imaging"
)

// Config represents the invocation defaults.
type Config struct {
	// Threshold is the default white threshold (0-255).
	Threshold int `toml:"threshold"`
	// Suffix is the token inserted into derived output names,
	// e.g. "recolored" in "logo_recolored_00ff00.png".
	Suffix string `toml:"suffix"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{
		Threshold: imaging.DefaultWhiteThreshold,
		Suffix:    imaging.DefaultSuffix,
	}
}

// DefaultPath returns the conventional config file location,
// "<user config dir>/recolor/config.toml".
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "recolor", "config.toml"), nil
}

// Load reads and validates the TOML file at path. Keys omitted from the
// file keep their built-in defaults. A missing file is an error here;
// use LoadDefault for the optional conventional location.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from the conventional location, falling back
// to built-in defaults when no file exists there.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold %d not in [0,255]", c.Threshold)
	}
	if c.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	if strings.ContainsAny(c.Suffix, `/\`) {
		return fmt.Errorf("suffix %q must not contain path separators", c.Suffix)
	}
	return nil
}
