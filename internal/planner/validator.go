package planner

import (
	"encoding/json"
	"errors"

	"github.com/sceneforge/sceneplan-api/internal/models"
)

// ValidatePlan checks raw model output against the scene plan contract and
// converts it into a SceneMap. Three checks run in order: the text must be
// valid JSON, the top-level value must be an object (not an array or a
// primitive), and the object must contain at least one scene_N key.
//
// Validation is deliberately shallow: individual scene fields are decoded
// best-effort and never rejected, so drift inside an accepted scene is a
// display concern rather than a hard failure. Keys that do not match the
// scene_N pattern are dropped from the returned map.
func ValidatePlan(raw string) (models.SceneMap, error) {
	var rawScenes map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &rawScenes); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON, wrong top-level shape
			return nil, models.NewUnexpectedShapeError(typeErr.Value)
		}
		return nil, models.NewMalformedResponseError(err)
	}
	if rawScenes == nil {
		// "null" decodes into a map without error by leaving it nil
		return nil, models.NewUnexpectedShapeError("null")
	}

	scenes := make(models.SceneMap, len(rawScenes))
	for key, value := range rawScenes {
		if !models.IsSceneKey(key) {
			continue
		}
		var scene models.Scene
		if err := json.Unmarshal(value, &scene); err != nil {
			return nil, models.NewMalformedResponseError(err)
		}
		scenes[key] = scene
	}
	if len(scenes) == 0 {
		return nil, models.NewMissingSceneKeysError()
	}

	return scenes, nil
}
