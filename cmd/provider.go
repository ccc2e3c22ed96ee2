package cmd

import (
	"context"

	"github.com/user/cablecheck/pkg/config"
	"github.com/user/cablecheck/pkg/logging"
	"github.com/user/cablecheck/pkg/model"
)

// buildProvider initializes the configured AI provider. It returns nil
// when no provider is usable so callers degrade to deterministic
// extraction instead of failing.
func buildProvider(ctx context.Context, cfg *config.Config) model.Provider {
	providerName := cfg.SelectedProvider
	if providerName == "" {
		providerName = "gemini" // Default
	}

	apiKey := cfg.APIKeyFor(providerName)
	if apiKey == "" {
		logging.Warn("no API key configured, validating without a model", "provider", providerName)
		logging.Info("run 'cablecheck config setup' to configure a provider")
		return nil
	}

	provider, err := model.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
	if err != nil {
		logging.Warn("provider unavailable, validating without a model", "provider", providerName, "err", err)
		return nil
	}
	return provider
}

// closeProvider releases provider resources for backends that hold a
// connection. Safe to call with nil.
func closeProvider(provider model.Provider) {
	if closer, ok := provider.(interface{ Close() error }); ok {
		closer.Close()
	}
}
