package prompt

import (
	"strings"

	"github.com/sceneforge/sceneplan-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetSystemPrompt loads the main system prompt
func (l *Loader) GetSystemPrompt() (string, error) {
	return strings.TrimSpace(string(embedded.SystemPromptTxt)), nil
}

// GetContinuityInstructions loads the cross-scene continuity rules
func (l *Loader) GetContinuityInstructions() (string, error) {
	return strings.TrimSpace(string(embedded.ContinuityInstructionsTxt)), nil
}

// GetOutputFormatInstructions loads output format instructions
func (l *Loader) GetOutputFormatInstructions() (string, error) {
	return strings.TrimSpace(string(embedded.OutputFormatInstructionsTxt)), nil
}

// GetStyleDefaults loads the fixed default visual style
func (l *Loader) GetStyleDefaults() (string, error) {
	return strings.TrimSpace(string(embedded.StyleDefaultsTxt)), nil
}
