package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "cablecheck")
	require.NoError(t, os.MkdirAll(dir, 0700))
	path := filepath.Join(dir, "config.yaml")
	t.Setenv("CABLECHECK_CONFIG", path)
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.SelectedProvider)
	assert.Equal(t, "", cfg.SelectedModel)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.NotNil(t, cfg.Providers)
}

func TestSaveAndReload(t *testing.T) {
	path := useTempConfig(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	cfg.SelectedProvider = "anthropic"
	cfg.SelectedModel = "claude-3-5-haiku-20241022"
	cfg.TimeoutSeconds = 10
	cfg.SetAPIKey("anthropic", "sk-test")
	require.NoError(t, SaveConfig(cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reloaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", reloaded.SelectedProvider)
	assert.Equal(t, "claude-3-5-haiku-20241022", reloaded.SelectedModel)
	assert.Equal(t, "sk-test", reloaded.GetAPIKey("anthropic"))
	assert.Equal(t, 10*time.Second, reloaded.Timeout())
}

func TestAPIKeyFor(t *testing.T) {
	useTempConfig(t)

	t.Run("Should prefer the configured key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-env")
		cfg := &Config{}
		cfg.SetAPIKey("openai", "sk-config")
		assert.Equal(t, "sk-config", cfg.APIKeyFor("openai"))
	})

	t.Run("Should fall back to the environment", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "g-env")
		cfg := &Config{}
		assert.Equal(t, "g-env", cfg.APIKeyFor("gemini"))
	})

	t.Run("Should return empty for unknown providers", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, "", cfg.APIKeyFor("mistral"))
	})
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	path := useTempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: -5\n"), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
}
