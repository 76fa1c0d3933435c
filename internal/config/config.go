// Package config handles global client book configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DataFileName is the store file name used when no data file is configured.
const DataFileName = "clients.db"

// Config represents the global client book configuration.
type Config struct {
	// DataFile is the path of the SQLite client store. A leading "~" is
	// expanded to the home directory.
	DataFile string `toml:"data_file"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and markdown rendering.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for rendered markdown code blocks.
	// Example values: "monokai", "dracula", "github", "nord".
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	return LoadOptional(DefaultPath())
}

// LoadOptional loads the configuration at path, returning a default config
// if the file doesn't exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/clientbook/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "clientbook", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "clientbook", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// ResolveDataPath returns the store path to open. A non-empty override
// (the --data flag) wins, then data_file, then DataFileName next to
// configPath.
func (c *Config) ResolveDataPath(override, configPath string) (string, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = strings.TrimSpace(c.DataFile)
	}
	if path == "" {
		return filepath.Join(filepath.Dir(configPath), DataFileName), nil
	}
	return expandHome(path)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// settableKeys maps config keys accepted by Set to their fields.
var settableKeys = map[string]func(c *Config) *string{
	"data_file":     func(c *Config) *string { return &c.DataFile },
	"ui.accent":     func(c *Config) *string { return &c.UI.Accent },
	"ui.code_theme": func(c *Config) *string { return &c.UI.CodeTheme },
}

// Keys returns the keys accepted by Set and Get, sorted.
func Keys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to a dotted config key such as "ui.accent".
// An empty value clears the key.
func (c *Config) Set(key, value string) error {
	field, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key '%s' (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	*field(c) = strings.TrimSpace(value)
	return nil
}

// Get returns the value of a dotted config key.
func (c *Config) Get(key string) (string, error) {
	field, ok := settableKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key '%s' (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return *field(c), nil
}

const defaultConfig = `# Client book configuration
#
# Path of the client store. Defaults to clients.db next to this file.
# data_file = "~/clients.db"
#
# Optional UI accent color for headers and highlights in terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# code_theme = "monokai"
`

// CreateDefault creates a default config file at path if it doesn't exist.
// It reports whether a file was written.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
