package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigFile names an alternate config file, taking precedence over
// the default location but not over the --config flag.
const EnvConfigFile = "DSC_CONFIG"

// Config is the dsc configuration file. Loaded once per process and
// read-only thereafter; flags override individual fields per
// invocation.
type Config struct {
	// DocspellURL is the base URL of the Docspell server.
	DocspellURL string `toml:"docspell_url"`

	// DefaultSourceID is used by upload-like commands when no --source
	// flag is given.
	DefaultSourceID string `toml:"default_source_id,omitempty"`

	// DefaultFormat is the output format used when no --format flag is
	// given. One of json, lisp, csv, tabular.
	DefaultFormat string `toml:"default_format,omitempty"`

	// AdminSecret authenticates admin subcommands. Can be overridden
	// with --admin-secret.
	AdminSecret string `toml:"admin_secret,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DocspellURL:   "http://localhost:7880",
		DefaultFormat: "tabular",
	}
}

// DefaultPath returns the OS-dependent config file location
// (e.g. ~/.config/dsc/config.toml).
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "dsc", "config.toml"), nil
}

// Load reads the configuration with the documented precedence: the
// explicit path (--config flag) if non-empty, else the DSC_CONFIG
// environment variable, else the default location. A missing default
// file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		return LoadFromFile(path)
	}

	defPath, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(defPath); err != nil {
		return Default(), nil
	}
	return LoadFromFile(defPath)
}

// LoadFromFile reads the configuration from a specific file. Here a
// missing or malformed file is an error, since the user asked for it.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes the built-in configuration to the default
// location and returns the path written. Existing files are not
// overwritten.
func WriteDefault() (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
