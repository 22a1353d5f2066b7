package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFactory_EmptyKeyRejected(t *testing.T) {
	factory := NewProviderFactory()

	provider, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "", "")
	require.Error(t, err)
	assert.Nil(t, provider)
	assert.Contains(t, err.Error(), "API key")
}

func TestProviderFactory_ExplicitProviderName(t *testing.T) {
	factory := NewProviderFactory()
	ctx := context.Background()

	tests := []struct {
		name         string
		providerName string
		wantProvider string
		wantErr      bool
	}{
		{name: "openai by name", providerName: "openai", wantProvider: "openai"},
		{name: "gemini by name", providerName: "gemini", wantProvider: "gemini"},
		{name: "google alias", providerName: "google", wantProvider: "gemini"},
		{name: "case insensitive", providerName: "OpenAI", wantProvider: "openai"},
		{name: "unknown provider", providerName: "anthropic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.GetProvider(ctx, "some-model", tt.providerName, "test-key")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, provider.Name())
		})
	}
}

func TestProviderFactory_ModelInference(t *testing.T) {
	factory := NewProviderFactory()
	ctx := context.Background()

	tests := []struct {
		name         string
		model        string
		wantProvider string
	}{
		{name: "gpt model routes to openai", model: "gpt-5-mini", wantProvider: "openai"},
		{name: "gpt case insensitive", model: "GPT-4.1-mini", wantProvider: "openai"},
		{name: "gemini flash", model: "gemini-2.5-flash", wantProvider: "gemini"},
		{name: "gemini pro", model: "gemini-2.5-pro", wantProvider: "gemini"},
		{name: "unknown model defaults to gemini", model: "mystery-model", wantProvider: "gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.GetProvider(ctx, tt.model, "", "test-key")
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, provider.Name())
		})
	}
}
