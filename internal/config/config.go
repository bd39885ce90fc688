// Package config loads optional CLI defaults from a .glint.toml file.
// Flags always override file values; a missing file yields the
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the CLI looks for defaults unless told
// otherwise.
const DefaultPath = ".glint.toml"

// Config holds the file-configurable defaults for the search and
// traverse subcommands.
type Config struct {
	CaseSensitive bool     `toml:"case_sensitive"`
	NoIgnore      bool     `toml:"no_ignore"`
	MaxDepth      int      `toml:"max_depth"`
	Include       []string `toml:"include"`
	Exclude       []string `toml:"exclude"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{MaxDepth: 20}
}

// Load reads path into a Config. A nonexistent file is not an error
// and yields Default(); a malformed file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
