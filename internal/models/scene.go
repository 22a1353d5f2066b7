package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// sceneKeyPattern matches scene map keys: scene_1, scene_2, ... (1-based, no
// leading zeros).
var sceneKeyPattern = regexp.MustCompile(`^scene_([1-9]\d*)$`)

// SceneNumber extracts the numeric suffix from a scene key.
// Returns false for anything that is not a well-formed scene key
// (scene_0, scene_01, scene_x, plain "scene").
func SceneNumber(key string) (int, bool) {
	match := sceneKeyPattern.FindStringSubmatch(key)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsSceneKey reports whether key is a well-formed scene map key.
func IsSceneKey(key string) bool {
	_, ok := SceneNumber(key)
	return ok
}

// Persona describes the authorial voice each scene instruction is written in
type Persona struct {
	Role           string `json:"role"`
	Tone           string `json:"tone"`
	KnowledgeLevel string `json:"knowledge_level"`
}

// Example is one input/expected-output demonstration pair
type Example struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// SceneStructure carries the four continuity fields every scene must repeat
// in full. Each scene is generated in one batched call with no cross-call
// memory, so the character description cannot be abbreviated or referenced
// from a previous scene.
type SceneStructure struct {
	CharacterDescription string `json:"character_description"`
	Setting              string `json:"setting"`
	KeyAction            string `json:"key_action"`
	CameraDirection      string `json:"camera_direction"`
}

// OutputSpec describes the media target and structural content of a scene
type OutputSpec struct {
	MediaType string         `json:"media_type"`
	Structure SceneStructure `json:"structure"`
}

// Scene is one per-scene generation instruction as returned by the model.
//
// Decoding is tolerant: the raw JSON for the scene is always retained, and
// the typed fields are filled on a best-effort basis. Validation of a plan is
// shallow (key pattern only), so a scene whose inner fields drift from the
// requested shape still round-trips losslessly through export.
type Scene struct {
	Objective   string     `json:"objective"`
	Summary     string     `json:"summary"`
	Persona     Persona    `json:"persona"`
	Tasks       []string   `json:"tasks"`
	Constraints []string   `json:"constraints"`
	Examples    []Example  `json:"examples"`
	Output      OutputSpec `json:"output"`

	raw json.RawMessage
}

// sceneAlias avoids recursing into Scene's own UnmarshalJSON/MarshalJSON.
type sceneAlias Scene

// UnmarshalJSON keeps the raw bytes and decodes the typed fields when they
// fit. It never fails on shape drift; only syntactically broken JSON errors.
func (s *Scene) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid scene JSON")
	}
	raw := append(json.RawMessage(nil), data...)

	var alias sceneAlias
	if err := json.Unmarshal(data, &alias); err == nil {
		alias.raw = raw
		*s = Scene(alias)
		return nil
	}
	*s = Scene{raw: raw}
	return nil
}

// MarshalJSON re-emits the scene exactly as the model produced it. Scenes
// constructed in code (no raw bytes) marshal from the typed fields.
func (s Scene) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	return json.Marshal(sceneAlias(s))
}

// Raw returns the verbatim JSON this scene was decoded from, or nil if the
// scene was constructed in code.
func (s Scene) Raw() json.RawMessage {
	return s.raw
}

// SceneMap holds the accepted scenes of one planning call, keyed scene_1..scene_N
type SceneMap map[string]Scene

// Keys returns the scene keys ordered by numeric suffix, so scene_10 sorts
// after scene_9 rather than between scene_1 and scene_2.
func (m SceneMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, _ := SceneNumber(keys[i])
		nj, _ := SceneNumber(keys[j])
		return ni < nj
	})
	return keys
}

// MarshalJSON emits the map as a JSON object with keys in numeric scene
// order. Go maps marshal in random key order, which would scramble the
// exported plan.
func (m SceneMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		sceneJSON, err := json.Marshal(m[key])
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", key, err)
		}
		buf.Write(sceneJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
