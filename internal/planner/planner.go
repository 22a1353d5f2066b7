package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sceneforge/sceneplan-api/internal/duration"
	"github.com/sceneforge/sceneplan-api/internal/llm"
	"github.com/sceneforge/sceneplan-api/internal/metrics"
	"github.com/sceneforge/sceneplan-api/internal/models"
	"github.com/sceneforge/sceneplan-api/internal/prompt"
)

// SceneWindowSeconds is the fixed clip length, in seconds, that the
// downstream video model produces per scene. Scene counts derive from it,
// and any human-readable duration summary must use the same rounding.
const SceneWindowSeconds = 8

const roleUser = "user"

// maxPlanScenes is the count a maximum-length duration derives. Inputs
// beyond duration.MaxSeconds never survive parsing, so the clamp in
// SceneCount only matters for direct calls with wild values.
const maxPlanScenes = duration.MaxSeconds / SceneWindowSeconds

// SceneCount returns how many scene windows are needed to cover a duration.
// Always at least 1: (0,8] -> 1, (8,16] -> 2, ceil(d/8) in general. The
// bounds are enforced in float space first; converting an out-of-range
// float to int is implementation-defined (negative on amd64).
func SceneCount(seconds float64) int {
	count := math.Ceil(seconds / SceneWindowSeconds)
	if math.IsNaN(count) || count < 1 {
		return 1
	}
	if count > maxPlanScenes {
		return maxPlanScenes
	}
	return int(count)
}

// ProviderResolver selects a provider for one generation call. The API key
// is a per-call argument, never resolver state. *llm.ProviderFactory is the
// production implementation.
type ProviderResolver interface {
	GetProvider(ctx context.Context, model, providerName, apiKey string) (llm.Provider, error)
}

// Service turns a concept plus a free-text duration into a scene plan via
// one structured-output generation call.
type Service struct {
	resolver      ProviderResolver
	promptBuilder *prompt.Builder
	systemPrompt  string // default-style system prompt, built once
	metrics       *metrics.SentryMetrics
}

func NewService() *Service {
	return NewServiceWithResolver(llm.NewProviderFactory())
}

// NewServiceWithResolver creates a service with a specific provider resolver
func NewServiceWithResolver(resolver ProviderResolver) *Service {
	promptBuilder := prompt.NewPromptBuilder()
	systemPrompt, err := promptBuilder.BuildSystemPrompt("")
	if err != nil {
		log.Fatal("Failed to load system prompt:", err)
	}

	return &Service{
		resolver:      resolver,
		promptBuilder: promptBuilder,
		systemPrompt:  systemPrompt,
		metrics:       metrics.NewSentryMetrics(),
	}
}

// PlanResult is the outcome of one successful planning call.
type PlanResult struct {
	Scenes          models.SceneMap `json:"scenes"`
	SceneCount      int             `json:"scene_count"`
	DurationSeconds float64         `json:"duration_seconds"`
	Model           string          `json:"model"`
	Usage           any             `json:"usage,omitempty"`
}

// Plan parses the duration, derives the scene count, runs exactly one
// generation attempt, and validates the returned object. Every failure is a
// *models.PlanError; there is no retry and no partial result. An empty
// credential fails before any provider is constructed or called.
func (s *Service) Plan(ctx context.Context, req *models.PlanRequest) (*PlanResult, error) {
	startTime := time.Now()
	log.Printf("🎬 PLAN REQUEST STARTED (Model: %s)", req.Model)

	// Start Sentry transaction for performance monitoring
	transaction := sentry.StartTransaction(ctx, "planner.plan")
	defer transaction.Finish()

	transaction.SetTag("model", req.Model)
	transaction.SetTag("provider", req.Provider)

	// Credential precondition: the key must arrive as an explicit argument,
	// and its absence fails before any network attempt.
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		transaction.SetTag("success", "false")
		transaction.SetTag("error_type", "missing_credential")
		return nil, models.NewMissingCredentialError()
	}

	seconds, err := duration.Parse(req.Duration)
	if err != nil {
		transaction.SetTag("success", "false")
		transaction.SetTag("error_type", "invalid_duration")
		return nil, err
	}

	sceneCount := SceneCount(seconds)
	log.Printf("⏱️ DURATION PARSED: %q -> %s -> %d scene(s)",
		req.Duration, duration.Describe(seconds), sceneCount)

	transaction.SetTag("scene_count", fmt.Sprintf("%d", sceneCount))
	transaction.SetContext("plan", map[string]interface{}{
		"model":            req.Model,
		"duration_seconds": seconds,
		"scene_count":      sceneCount,
		"concept_length":   len(req.Concept),
		"style_override":   req.Style != "",
	})

	provider, err := s.resolver.GetProvider(ctx, req.Model, req.Provider, apiKey)
	if err != nil {
		transaction.SetTag("success", "false")
		transaction.SetTag("error_type", "provider_error")
		return nil, models.NewGenerationFailedError(err)
	}

	systemPrompt := s.systemPrompt
	if strings.TrimSpace(req.Style) != "" {
		systemPrompt, err = s.promptBuilder.BuildSystemPrompt(req.Style)
		if err != nil {
			transaction.SetTag("success", "false")
			transaction.SetTag("error_type", "prompt_error")
			return nil, models.NewGenerationFailedError(err)
		}
	}

	userPrompt := s.promptBuilder.BuildUserPrompt(prompt.Params{
		Concept:      req.Concept,
		SceneCount:   sceneCount,
		SceneSeconds: SceneWindowSeconds,
	})

	request := &llm.GenerationRequest{
		Model:        req.Model,
		InputArray:   []map[string]any{{"role": roleUser, "content": userPrompt}},
		SystemPrompt: systemPrompt,
		OutputSchema: llm.ScenePlanOutputSchema(sceneCount),
	}

	log.Printf("🚀 PROVIDER REQUEST: %s model=%s, scenes=%d",
		provider.Name(), req.Model, sceneCount)

	resp, err := provider.Generate(ctx, request)
	if err != nil {
		transaction.SetTag("success", "false")
		transaction.SetTag("error_type", "provider_error")
		sentry.CaptureException(err)
		if errors.Is(err, llm.ErrInvalidCredential) {
			return nil, models.NewInvalidCredentialError(err)
		}
		return nil, models.NewGenerationFailedError(err)
	}

	scenes, err := ValidatePlan(resp.RawOutput)
	if err != nil {
		transaction.SetTag("success", "false")
		transaction.SetTag("error_type", "validation_error")
		sentry.CaptureException(err)
		return nil, err
	}

	// Shallow contract: a count mismatch is logged, not rejected
	if len(scenes) != sceneCount {
		log.Printf("⚠️ SCENE COUNT MISMATCH: requested %d, model returned %d", sceneCount, len(scenes))
		transaction.SetTag("scene_count_mismatch", "true")
	}

	transaction.SetTag("success", "true")

	elapsed := time.Since(startTime)
	s.metrics.RecordGenerationDuration(ctx, elapsed, true)
	s.metrics.RecordScenePlan(ctx, len(scenes), req.Model)
	if counts := llm.ExtractTokenCounts(resp.Usage); counts.Total > 0 {
		s.metrics.RecordTokenUsage(ctx, req.Model,
			int(counts.Total), int(counts.Input), int(counts.Output), int(counts.Reasoning))
	}

	log.Printf("✅ PLAN REQUEST COMPLETE: %d scene(s) in %v", len(scenes), elapsed)

	return &PlanResult{
		Scenes:          scenes,
		SceneCount:      len(scenes),
		DurationSeconds: seconds,
		Model:           req.Model,
		Usage:           resp.Usage,
	}, nil
}
