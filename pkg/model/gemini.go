package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider for Google Gemini.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider creates a new Gemini provider with the given API key.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)
	// Temperature 0 for deterministic extraction.
	model.SetTemperature(0)

	return &GeminiProvider{client: client, model: model}, nil
}

// Infer sends the extraction prompt to Gemini and parses the reply.
func (g *GeminiProvider) Infer(ctx context.Context, text string) (map[string]any, error) {
	prompt, err := BuildPrompt(text)
	if err != nil {
		return nil, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from gemini")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			raw += string(t)
		}
	}
	if raw == "" {
		return nil, fmt.Errorf("empty reply from gemini")
	}

	return ParseFields(raw)
}

// ListModels returns the generative models available to the API key.
func (g *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	var models []string
	it := g.client.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		name := strings.TrimPrefix(m.Name, "models/")
		if strings.HasPrefix(name, "gemini") {
			models = append(models, name)
		}
	}
	return models, nil
}

// Close releases the underlying API client.
func (g *GeminiProvider) Close() error {
	return g.client.Close()
}
