package prompt

import (
	"fmt"
	"strings"
)

// Builder assembles the meta-prompt for one scene planning call
type Builder struct {
	loader *Loader
}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{loader: NewPromptLoader()}
}

// Params carries the per-request values embedded into the meta-prompt
type Params struct {
	Concept      string
	SceneCount   int
	SceneSeconds int // fixed length of one scene clip
}

// BuildSystemPrompt assembles the static instruction sections: director
// persona, continuity rules, visual style, and the strict output format.
func (b *Builder) BuildSystemPrompt(styleOverride string) (string, error) {
	systemPrompt, err := b.loader.GetSystemPrompt()
	if err != nil {
		return "", fmt.Errorf("failed to load system prompt: %w", err)
	}

	continuity, err := b.loader.GetContinuityInstructions()
	if err != nil {
		return "", fmt.Errorf("failed to load continuity instructions: %w", err)
	}

	style, err := b.styleSection(styleOverride)
	if err != nil {
		return "", err
	}

	outputFormat, err := b.loader.GetOutputFormatInstructions()
	if err != nil {
		return "", fmt.Errorf("failed to load output format instructions: %w", err)
	}

	sections := []string{
		systemPrompt,
		continuity,
		style,
		outputFormat,
	}

	return strings.Join(sections, "\n\n"), nil
}

// styleSection returns the default style block, or a replacement built from
// the user's override. An override replaces the default for all scenes.
func (b *Builder) styleSection(styleOverride string) (string, error) {
	if strings.TrimSpace(styleOverride) == "" {
		style, err := b.loader.GetStyleDefaults()
		if err != nil {
			return "", fmt.Errorf("failed to load style defaults: %w", err)
		}
		return style, nil
	}

	return fmt.Sprintf(
		"VISUAL STYLE:\n\nApply this style to every scene: %s. Apply it consistently; never mix styles within one plan.",
		strings.TrimSpace(styleOverride)), nil
}

// BuildUserPrompt renders the per-request planning instruction: the concept,
// the literal scene count, and the exact key naming contract.
func (b *Builder) BuildUserPrompt(params Params) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Video concept: %s\n\n", strings.TrimSpace(params.Concept))
	fmt.Fprintf(&sb, "Split this concept into EXACTLY %d scene(s). Each scene becomes one %d-second clip.\n\n",
		params.SceneCount, params.SceneSeconds)
	fmt.Fprintf(&sb, "The response object must contain exactly the keys %s - every key present, contiguous, no gaps, no extra keys.\n",
		sceneKeyRange(params.SceneCount))
	sb.WriteString("Together the scenes must tell one continuous story covering the whole concept from start to finish.")

	return sb.String()
}

// sceneKeyRange renders the required key span for the prompt text
func sceneKeyRange(count int) string {
	if count == 1 {
		return `"scene_1"`
	}
	return fmt.Sprintf(`"scene_1" through "scene_%d"`, count)
}
