package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory creates providers based on model name or explicit provider
// choice. The API key is a per-call parameter: two requests with different
// keys never share a client, and the factory itself holds no credentials.
type ProviderFactory struct{}

// NewProviderFactory creates a new provider factory
func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// GetProvider returns the appropriate provider for the given model/provider
// name, bound to the supplied API key
func (f *ProviderFactory) GetProvider(ctx context.Context, model, providerName, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key not configured")
	}

	// If provider is explicitly specified, use that
	if providerName != "" {
		return f.getProviderByName(ctx, providerName, apiKey)
	}

	// Otherwise, infer from model name
	return f.getProviderByModel(ctx, model, apiKey)
}

// getProviderByName creates a provider by explicit name
func (f *ProviderFactory) getProviderByName(ctx context.Context, providerName, apiKey string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case providerNameOpenAI:
		return NewOpenAIProvider(apiKey), nil

	case providerNameGemini, "google":
		return NewGeminiProvider(ctx, apiKey)

	default:
		return nil, fmt.Errorf("unknown provider: %s (allowed: openai, gemini)", providerName)
	}
}

// getProviderByModel infers provider from model name
func (f *ProviderFactory) getProviderByModel(ctx context.Context, model, apiKey string) (Provider, error) {
	modelLower := strings.ToLower(model)

	// GPT models use OpenAI
	if strings.HasPrefix(modelLower, "gpt-") {
		return NewOpenAIProvider(apiKey), nil
	}

	// Gemini models use Google
	if strings.HasPrefix(modelLower, "gemini-") {
		return NewGeminiProvider(ctx, apiKey)
	}

	// Default to Gemini for unknown models
	return NewGeminiProvider(ctx, apiKey)
}
