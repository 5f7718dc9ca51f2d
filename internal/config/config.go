// Package config handles configuration loading and validation for spaarctl
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration for spaarctl
type Config struct {
	// Account state mirrored from the tracker backend. Premium gates
	// the premium-only themes; the engine reads it fresh on every call
	// and never writes it.
	Account AccountConfig `yaml:"account"`

	// Preferences that are plain config, not engine axes.
	Currency      string `yaml:"currency"`
	Notifications bool   `yaml:"notifications"`

	// Store holds the preference database location.
	Store StoreConfig `yaml:"store"`

	// UI holds output settings outside the persisted presentation state.
	UI UIConfig `yaml:"ui"`
}

// AccountConfig mirrors the entitlement state of the signed-in user.
type AccountConfig struct {
	Premium bool `yaml:"premium"`
}

// StoreConfig locates the durable preference store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// UIConfig holds terminal output settings.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() *Config {
	return &Config{
		Currency:      "EUR",
		Notifications: true,
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
	}
}

// Load loads configuration from a file, then applies environment
// overrides. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if len(c.Currency) != 3 || c.Currency != strings.ToUpper(c.Currency) {
		return fmt.Errorf("currency %q must be a three-letter ISO code", c.Currency)
	}
	return nil
}

// applyEnv overlays SPAARCTL_* environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("SPAARCTL_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("SPAARCTL_CURRENCY"); v != "" {
		c.Currency = strings.ToUpper(strings.TrimSpace(v))
	}
	if v := os.Getenv("SPAARCTL_PREMIUM"); v != "" {
		c.Account.Premium = isTruthy(v)
	}
	if v := os.Getenv("SPAARCTL_NO_COLOR"); v != "" {
		c.UI.NoColor = isTruthy(v)
	}
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetConfigPath returns the path to spaarctl.yaml in the user config dir.
func GetConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(base, "spaarctl", "spaarctl.yaml"), nil
}

// LoadFromUserConfig loads configuration from the user config dir.
func LoadFromUserConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func defaultStorePath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "spaarctl", "preferences.db")
	}
	return filepath.Join(base, "spaarctl", "preferences.db")
}
