// Package config handles global vaultgraph configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/aidanlsb/vaultgraph/internal/assemble"
)

// Config is the global configuration, loaded from
// ~/.config/vaultgraph/config.toml.
type Config struct {
	// DefaultVault is the name of the default vault (from Vaults).
	DefaultVault string `toml:"default_vault"`

	// Vaults maps vault names to paths.
	Vaults map[string]string `toml:"vaults"`

	// Graph controls assembly policies.
	Graph GraphConfig `toml:"graph"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// GraphConfig controls how the assembler handles policy decisions.
type GraphConfig struct {
	// DuplicatePolicy decides which note wins when two node-like notes share
	// an identity: "last" (default) or "first".
	DuplicatePolicy string `toml:"duplicate_policy"`

	// SlugFallback retries failed endpoint lookups against slugified node
	// identities. Defaults to true when unset.
	SlugFallback *bool `toml:"slug_fallback"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color, an ANSI code ("0" to "255") or a
	// hex color ("#RRGGBB").
	Accent string `toml:"accent"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vaultgraph", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error: it
// yields an empty config.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// VaultPath returns the path for a named vault; an empty name means the
// default vault.
func (c *Config) VaultPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultVault
	}
	if name == "" {
		return "", fmt.Errorf("no default vault configured")
	}
	if path, ok := c.Vaults[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("vault '%s' not found in config", name)
}

// AssembleOptions translates the graph section into assembler options.
func (c *Config) AssembleOptions() assemble.Options {
	opts := assemble.DefaultOptions()
	switch c.Graph.DuplicatePolicy {
	case "first":
		opts.DuplicatePolicy = assemble.DuplicateKeepFirst
	case "", "last":
		// default
	}
	if c.Graph.SlugFallback != nil {
		opts.SlugFallback = *c.Graph.SlugFallback
	}
	return opts
}
