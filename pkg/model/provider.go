// Package model wires LLM providers into the validation pipeline. Each
// provider turns free cable design text into an untyped field mapping;
// nothing here is trusted until the schema admits it.
package model

import "context"

// Provider defines the interface for the supported AI backends.
type Provider interface {
	// Infer asks the model to pull cable design parameters out of text.
	// The mapping is returned exactly as the model produced it.
	Infer(ctx context.Context, text string) (map[string]any, error)
	// ListModels returns the model names the provider can serve.
	ListModels(ctx context.Context) ([]string, error)
}
