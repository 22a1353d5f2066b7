package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiProvider_Name(t *testing.T) {
	// We can't create a real client without an API key
	// So just test the name method with a nil client
	provider := &GeminiProvider{client: nil}
	assert.Equal(t, "gemini", provider.Name())
}

func TestGeminiProvider_BuildContents(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	tests := []struct {
		name       string
		inputArray []map[string]any
		wantLen    int
	}{
		{
			name: "single user message",
			inputArray: []map[string]any{
				{"role": "user", "content": "test content"},
			},
			wantLen: 1,
		},
		{
			name: "developer role converted to user",
			inputArray: []map[string]any{
				{"role": "developer", "content": "system message"},
			},
			wantLen: 1,
		},
		{
			name: "multiple messages",
			inputArray: []map[string]any{
				{"role": "user", "content": "message 1"},
				{"role": "user", "content": "message 2"},
			},
			wantLen: 2,
		},
		{
			name: "invalid message skipped",
			inputArray: []map[string]any{
				{"role": "user", "content": "valid"},
				{"role": "user"}, // missing content
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents, err := provider.buildGeminiContents(tt.inputArray)
			require.NoError(t, err)
			assert.Len(t, contents, tt.wantLen)

			// Verify all contents have user role
			for _, content := range contents {
				assert.Equal(t, "user", content.Role)
				assert.NotEmpty(t, content.Parts)
			}
		})
	}
}

func TestGeminiProvider_ConvertScenePlanSchema(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	geminiSchema := provider.convertSchemaToGemini(ScenePlanSchema(2))
	require.NotNil(t, geminiSchema)
	assert.Equal(t, genai.TypeObject, geminiSchema.Type)

	require.Contains(t, geminiSchema.Properties, "scene_1")
	require.Contains(t, geminiSchema.Properties, "scene_2")
	assert.ElementsMatch(t, []string{"scene_1", "scene_2"}, geminiSchema.Required)

	// Spot-check the nested scene conversion.
	scene := geminiSchema.Properties["scene_1"]
	require.NotNil(t, scene)
	assert.Equal(t, genai.TypeObject, scene.Type)
	assert.Equal(t, genai.TypeString, scene.Properties["objective"].Type)
	assert.Equal(t, genai.TypeArray, scene.Properties["tasks"].Type)
	assert.Equal(t, genai.TypeString, scene.Properties["tasks"].Items.Type)

	structure := scene.Properties["output"].Properties["structure"]
	require.NotNil(t, structure)
	assert.Len(t, structure.Required, 4)
	assert.Contains(t, structure.Required, "character_description")
}

func TestGeminiProvider_ConvertSchemaTypes(t *testing.T) {
	provider := &GeminiProvider{client: nil}

	tests := []struct {
		name   string
		schema map[string]any
		want   genai.Type
	}{
		{name: "string", schema: map[string]any{"type": "string"}, want: genai.TypeString},
		{name: "integer", schema: map[string]any{"type": "integer"}, want: genai.TypeInteger},
		{name: "number", schema: map[string]any{"type": "number"}, want: genai.TypeNumber},
		{name: "boolean", schema: map[string]any{"type": "boolean"}, want: genai.TypeBoolean},
		{name: "missing type defaults to string", schema: map[string]any{}, want: genai.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := provider.convertSchemaToGemini(tt.schema)
			assert.Equal(t, tt.want, converted.Type)
		})
	}

	t.Run("enum values carried over", func(t *testing.T) {
		converted := provider.convertSchemaToGemini(map[string]any{
			"type": "string",
			"enum": []string{"video", "image"},
		})
		assert.Equal(t, []string{"video", "image"}, converted.Enum)
	})

	t.Run("description carried over", func(t *testing.T) {
		converted := provider.convertSchemaToGemini(map[string]any{
			"type":        "string",
			"description": "camera movement",
		})
		assert.Equal(t, "camera movement", converted.Description)
	})
}

func TestNewGeminiProvider_InvalidKey(t *testing.T) {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx, "invalid-key")

	// This might succeed (client creation) or fail depending on SDK validation
	// The important thing is we can create the provider object
	if err != nil {
		assert.Error(t, err)
	} else {
		assert.NotNil(t, provider)
		assert.Equal(t, "gemini", provider.Name())
	}
}
