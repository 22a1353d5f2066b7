package llm

import "fmt"

// sceneSchema returns the JSON schema a single generated scene must satisfy.
// The contract is a fixed system constant, not user-configurable.
func sceneSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"objective": map[string]any{
				"type":        "string",
				"description": "What this scene must accomplish within the overall video",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Short summary of the scene in the user's language",
			},
			"persona": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"role":            map[string]any{"type": "string"},
					"tone":            map[string]any{"type": "string"},
					"knowledge_level": map[string]any{"type": "string"},
				},
				"required":             []string{"role", "tone", "knowledge_level"},
				"additionalProperties": false,
			},
			"tasks": map[string]any{
				"type":        "array",
				"description": "Ordered task instructions for the video model",
				"items":       map[string]any{"type": "string"},
			},
			"constraints": map[string]any{
				"type":        "array",
				"description": "Ordered constraints the generated clip must respect",
				"items":       map[string]any{"type": "string"},
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"input":           map[string]any{"type": "string"},
						"expected_output": map[string]any{"type": "string"},
					},
					"required":             []string{"input", "expected_output"},
					"additionalProperties": false,
				},
			},
			"output": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"media_type": map[string]any{"type": "string"},
					"structure": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"character_description": map[string]any{
								"type":        "string",
								"description": "Full self-contained character description, repeated verbatim in every scene",
							},
							"setting":          map[string]any{"type": "string"},
							"key_action":       map[string]any{"type": "string"},
							"camera_direction": map[string]any{"type": "string"},
						},
						"required":             []string{"character_description", "setting", "key_action", "camera_direction"},
						"additionalProperties": false,
					},
				},
				"required":             []string{"media_type", "structure"},
				"additionalProperties": false,
			},
		},
		"required":             []string{"objective", "summary", "persona", "tasks", "constraints", "examples", "output"},
		"additionalProperties": false,
	}
}

// ScenePlanSchema returns the JSON schema for a complete plan with exactly
// sceneCount scenes keyed scene_1..scene_N. Listing every key in required
// with additionalProperties false encodes the no-gaps contract directly in
// the schema.
func ScenePlanSchema(sceneCount int) map[string]any {
	properties := make(map[string]any, sceneCount)
	required := make([]string, 0, sceneCount)
	for i := 1; i <= sceneCount; i++ {
		key := fmt.Sprintf("scene_%d", i)
		properties[key] = sceneSchema()
		required = append(required, key)
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

// ScenePlanOutputSchema wraps the plan schema for a provider request
func ScenePlanOutputSchema(sceneCount int) *OutputSchema {
	return &OutputSchema{
		Name:        "scene_plan",
		Description: fmt.Sprintf("A %d-scene video generation plan", sceneCount),
		Schema:      ScenePlanSchema(sceneCount),
	}
}
