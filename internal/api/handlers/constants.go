package handlers

const (
	// Model selection
	defaultModel = "gemini-2.5-flash"

	// Longest concept preview written to logs
	maxConceptLogLength = 200
)

// allowedModels is the allow-list for planning calls
var allowedModels = map[string]bool{
	// Google Gemini models
	"gemini-2.5-flash": true,
	"gemini-2.5-pro":   true,
	"gemini-2.0-flash": true,
	// OpenAI GPT models
	"gpt-4o":      true,
	"gpt-4o-mini": true,
}

const allowedModelsHint = "gemini-2.5-flash, gemini-2.5-pro, gemini-2.0-flash, gpt-4o, gpt-4o-mini"
