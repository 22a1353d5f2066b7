package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sceneforge/sceneplan-api/internal/config"
	"github.com/sceneforge/sceneplan-api/internal/llm"
	"github.com/sceneforge/sceneplan-api/internal/metrics"
	"github.com/sceneforge/sceneplan-api/internal/models"
	"github.com/sceneforge/sceneplan-api/internal/observability"
	"github.com/sceneforge/sceneplan-api/internal/planner"
)

// ScenePlanner runs one planning call
type ScenePlanner interface {
	Plan(ctx context.Context, req *models.PlanRequest) (*planner.PlanResult, error)
}

type ScenePlanHandler struct {
	planner ScenePlanner
	cfg     *config.Config
	cw      *metrics.Client
}

func NewScenePlanHandler(cfg *config.Config, cw *metrics.Client) *ScenePlanHandler {
	return NewScenePlanHandlerWithPlanner(cfg, cw, planner.NewService())
}

// NewScenePlanHandlerWithPlanner creates a handler with a specific planner
func NewScenePlanHandlerWithPlanner(cfg *config.Config, cw *metrics.Client, p ScenePlanner) *ScenePlanHandler {
	return &ScenePlanHandler{
		planner: p,
		cfg:     cfg,
		cw:      cw,
	}
}

// Create handles POST /api/v1/scene-plans
func (h *ScenePlanHandler) Create(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ SCENE PLAN: PANIC recovered: %v", r)
			log.Printf("   Stack trace:\n%s", string(debug.Stack()))
			log.Printf("   Request ID: %s", c.GetString("request_id"))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":      fmt.Sprintf("Internal server error: %v", r),
				"request_id": c.GetString("request_id"),
			})
		}
	}()

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ SCENE PLAN: JSON binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": c.GetString("request_id")})
		return
	}

	log.Printf("📨 SCENE PLAN: Received request")
	log.Printf("   Concept length: %d", len(req.Concept))
	if len(req.Concept) > 0 {
		previewLen := maxConceptLogLength
		if len(req.Concept) < previewLen {
			previewLen = len(req.Concept)
		}
		log.Printf("   Concept preview: %s", req.Concept[:previewLen])
	}
	log.Printf("   Duration expression: %q", req.Duration)

	if req.Model == "" {
		req.Model = defaultModel
	}
	if !allowedModels[req.Model] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid model. Allowed: " + allowedModelsHint,
			"request_id": c.GetString("request_id"),
		})
		return
	}

	// Credential precedence: request header, then body, then the server's
	// fallback key for the model's provider family.
	if headerKey := strings.TrimSpace(c.GetHeader("X-API-Key")); headerKey != "" {
		req.APIKey = headerKey
	} else if strings.TrimSpace(req.APIKey) == "" {
		req.APIKey = h.cfg.FallbackAPIKey(req.Model)
	}

	// Start Langfuse trace for observability
	lfClient := observability.GetClient()
	trace := lfClient.StartTrace(c.Request.Context(), "scene-plan", map[string]interface{}{
		"model":         req.Model,
		"duration_expr": req.Duration,
	})
	defer trace.Finish()

	gen := trace.Generation("plan", map[string]interface{}{
		"model": req.Model,
	})
	gen.Input(req.Concept)

	startTime := time.Now()
	result, err := h.planner.Plan(c.Request.Context(), &req)
	duration := time.Since(startTime)

	if err != nil {
		gen.SetLevel("ERROR")
		gen.Output(err.Error())
		gen.Finish()
		h.cw.RecordGenerationDuration(duration, false)
		h.respondError(c, err)
		return
	}

	// Log the call to Langfuse with usage and cost
	counts := llm.ExtractTokenCounts(result.Usage)
	gen.LogModelCall(req.Model,
		[]map[string]interface{}{{"role": "user", "content": req.Concept}},
		result.Scenes,
		counts,
		map[string]interface{}{
			"scene_count":      result.SceneCount,
			"duration_seconds": result.DurationSeconds,
		})
	gen.Finish()

	// CloudWatch metrics (no-ops outside production)
	h.cw.RecordGenerationDuration(duration, true)
	h.cw.RecordScenePlan(result.SceneCount, req.Model)
	if counts.Total > 0 {
		h.cw.RecordTokenUsage(req.Model,
			int(counts.Total), int(counts.Input), int(counts.Output), int(counts.Reasoning))
		log.Printf("💰 Estimated cost: %s (%s)",
			observability.FormatCost(observability.CalculateCost(req.Model, counts)), req.Model)
	}

	recordPlanGenerated(result.SceneCount)

	log.Printf("✅ SCENE PLAN: %d scene(s) for %.0fs in %v",
		result.SceneCount, result.DurationSeconds, duration)

	// Structured-data export: same payload, served as a download
	if c.Query("download") == "1" {
		c.Header("Content-Disposition", `attachment; filename="scene-plan.json"`)
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id":       c.GetString("request_id"),
		"duration_seconds": result.DurationSeconds,
		"scene_count":      result.SceneCount,
		"scenes":           result.Scenes,
		"model":            result.Model,
		"usage":            result.Usage,
	})
}

// respondError maps the closed error taxonomy onto HTTP statuses. Input
// problems are 400, credential problems 401, upstream generation or contract
// failures 502.
func (h *ScenePlanHandler) respondError(c *gin.Context, err error) {
	planErr, ok := models.AsPlanError(err)
	if !ok {
		log.Printf("❌ SCENE PLAN: unclassified error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	log.Printf("❌ SCENE PLAN: %s: %s", planErr.Kind, planErr.Message)

	c.JSON(statusForKind(planErr.Kind), gin.H{
		"error":      planErr.UserMessage(),
		"kind":       planErr.Kind,
		"request_id": c.GetString("request_id"),
	})
}

func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrKindInvalidDuration:
		return http.StatusBadRequest
	case models.ErrKindMissingCredential, models.ErrKindInvalidCredential:
		return http.StatusUnauthorized
	case models.ErrKindGenerationFailed,
		models.ErrKindMalformedResponse,
		models.ErrKindUnexpectedShape,
		models.ErrKindMissingSceneKeys:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
