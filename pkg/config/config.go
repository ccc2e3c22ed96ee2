// Package config persists CLI settings: the selected provider and model,
// API keys and the model call budget.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeoutSeconds bounds the model call when the config file does
// not say otherwise.
const DefaultTimeoutSeconds = 30

// ProviderConfig holds per-provider settings.
type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

// Config holds the CLI configuration.
type Config struct {
	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	TimeoutSeconds   int                       `yaml:"timeout_seconds"`
	Providers        map[string]ProviderConfig `yaml:"providers"`
}

// GetConfigPath returns the path to the config file, creating the
// directory if needed. The CABLECHECK_CONFIG environment variable
// overrides the default ~/.cablecheck/config.yaml location.
func GetConfigPath() (string, error) {
	if path := os.Getenv("CABLECHECK_CONFIG"); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(home, ".cablecheck")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig reads the configuration from disk, returning defaults when
// no config file exists yet.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		SelectedProvider: "gemini",
		TimeoutSeconds:   DefaultTimeoutSeconds,
		Providers:        make(map[string]ProviderConfig),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

// SaveConfig writes the configuration to disk. The file carries API keys,
// so it is created owner-readable only.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) SetAPIKey(provider, apiKey string) {
	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
	c.Providers[provider] = ProviderConfig{APIKey: apiKey}
}

func (c *Config) GetAPIKey(provider string) string {
	return c.Providers[provider].APIKey
}

// APIKeyFor returns the API key for a provider, falling back to the
// conventional environment variable when the config has none.
func (c *Config) APIKeyFor(provider string) string {
	if key := c.GetAPIKey(provider); key != "" {
		return key
	}
	switch provider {
	case "gemini":
		return os.Getenv("GOOGLE_API_KEY")
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return ""
}

// Timeout returns the configured model call budget as a duration.
func (c *Config) Timeout() time.Duration {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
