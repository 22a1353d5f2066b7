package llm

import (
	"context"
)

// Provider defines the interface for LLM providers
// All providers MUST support structured output (JSON Schema) so scene plans
// come back as a parseable JSON object rather than prose
type Provider interface {
	// Generate runs one structured-output generation call. Providers make
	// exactly one attempt; retry policy belongs to the caller, and the
	// caller never retries a plan call either.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for one generation call
type GenerationRequest struct {
	Model        string
	InputArray   []map[string]any
	SystemPrompt string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// GenerationResponse contains the raw result from the LLM. The text is not
// parsed here - shape checking is the plan validator's job.
type GenerationResponse struct {
	RawOutput string `json:"-"` // Raw JSON text output
	Usage     any    `json:"usage"`
}
