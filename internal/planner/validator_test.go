package planner

import (
	"testing"

	"github.com/sceneforge/sceneplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	planErr, ok := models.AsPlanError(err)
	require.True(t, ok, "expected a *models.PlanError, got %v", err)
	assert.Equal(t, kind, planErr.Kind)
}

func TestValidatePlanMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain text", "not json"},
		{"empty string", ""},
		{"truncated object", `{"scene_1": {"objective": "walk`},
		{"trailing garbage", `{"scene_1": {}} extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenes, err := ValidatePlan(tt.raw)
			assert.Nil(t, scenes)
			requireKind(t, err, models.ErrKindMalformedResponse)
		})
	}
}

func TestValidatePlanUnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"array", `[1, 2, 3]`},
		{"array of scenes", `[{"scene_1": {}}]`},
		{"string", `"scene_1"`},
		{"number", `42`},
		{"bool", `true`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenes, err := ValidatePlan(tt.raw)
			assert.Nil(t, scenes)
			requireKind(t, err, models.ErrKindUnexpectedShape)
		})
	}
}

func TestValidatePlanMissingSceneKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty object", `{}`},
		{"unrelated keys", `{"foo": 1, "bar": "baz"}`},
		{"zero index", `{"scene_0": {}}`},
		{"padded index", `{"scene_01": {}}`},
		{"wrong case", `{"Scene_1": {}}`},
		{"missing index", `{"scene_": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenes, err := ValidatePlan(tt.raw)
			assert.Nil(t, scenes)
			requireKind(t, err, models.ErrKindMissingSceneKeys)
		})
	}
}

func TestValidatePlanAccepts(t *testing.T) {
	raw := `{"scene_1": {"objective": "introduce the cat", "summary": "the cat wakes up"}}`

	scenes, err := ValidatePlan(raw)
	require.NoError(t, err)
	require.Len(t, scenes, 1)

	scene, ok := scenes["scene_1"]
	require.True(t, ok)
	assert.Equal(t, "introduce the cat", scene.Objective)
	assert.Equal(t, "the cat wakes up", scene.Summary)
}

func TestValidatePlanDropsNonSceneKeys(t *testing.T) {
	raw := `{"scene_1": {"objective": "a"}, "scene_2": {"objective": "b"}, "notes": "ignore me", "title": "plan"}`

	scenes, err := ValidatePlan(raw)
	require.NoError(t, err)
	assert.Len(t, scenes, 2)
	assert.Equal(t, []string{"scene_1", "scene_2"}, scenes.Keys())
}

func TestValidatePlanOrdersByNumericSuffix(t *testing.T) {
	raw := `{"scene_10": {}, "scene_2": {}, "scene_1": {}}`

	scenes, err := ValidatePlan(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"scene_1", "scene_2", "scene_10"}, scenes.Keys())
}

// Validation is shallow on purpose: the key pattern is checked, the fields
// inside each scene are not. A stricter per-field validator would be a
// separate, additive layer; drift inside an accepted scene stays a display
// concern and must not fail the plan.
func TestValidatePlanAcceptsDriftedSceneFields(t *testing.T) {
	raw := `{"scene_1": {"objective": 42, "tasks": "should be an array", "unknown_field": true}}`

	scenes, err := ValidatePlan(raw)
	require.NoError(t, err)
	require.Len(t, scenes, 1)

	// The drifted scene still exports exactly as the model produced it
	scene := scenes["scene_1"]
	assert.JSONEq(t, `{"objective": 42, "tasks": "should be an array", "unknown_field": true}`, string(scene.Raw()))
}

func TestValidatePlanIdempotent(t *testing.T) {
	raw := `{"scene_1": {"objective": "open"}, "scene_2": {"objective": "close"}}`

	first, err := ValidatePlan(raw)
	require.NoError(t, err)
	second, err := ValidatePlan(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Keys(), second.Keys())
}
