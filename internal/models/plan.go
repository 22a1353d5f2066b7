package models

// PlanRequest wraps the user's scene planning parameters
type PlanRequest struct {
	Concept  string `json:"concept"`            // Short video concept, e.g. "a cat explores a city"
	Duration string `json:"duration"`           // Free-text duration expression, e.g. "1m 30s" or "1 phút"
	Model    string `json:"model,omitempty"`    // Target model; server default when empty
	Provider string `json:"provider,omitempty"` // Explicit provider name; inferred from model when empty
	APIKey   string `json:"api_key,omitempty"`  // Per-request provider key; header and server env are fallbacks
	Style    string `json:"style,omitempty"`    // Visual style override; fixed default when empty
}

// DurationPreviewRequest wraps a duration expression for dry-run parsing
type DurationPreviewRequest struct {
	Duration string `json:"duration"`
}
