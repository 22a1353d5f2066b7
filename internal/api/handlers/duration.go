package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sceneforge/sceneplan-api/internal/duration"
	"github.com/sceneforge/sceneplan-api/internal/models"
	"github.com/sceneforge/sceneplan-api/internal/planner"
)

type DurationHandler struct{}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

// Preview handles POST /api/v1/duration/preview. It parses a duration
// expression without touching any provider, so the UI can show the scene
// count while the user types. No credential required.
func (h *DurationHandler) Preview(c *gin.Context) {
	var req models.DurationPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": c.GetString("request_id")})
		return
	}

	seconds, err := duration.Parse(req.Duration)
	if err != nil {
		planErr, ok := models.AsPlanError(err)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "request_id": c.GetString("request_id")})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      planErr.UserMessage(),
			"kind":       planErr.Kind,
			"request_id": c.GetString("request_id"),
		})
		return
	}

	sceneCount := planner.SceneCount(seconds)
	log.Printf("⏱️ DURATION PREVIEW: %q -> %s -> %d scene(s)",
		req.Duration, duration.Describe(seconds), sceneCount)

	c.JSON(http.StatusOK, gin.H{
		"input":       req.Duration,
		"seconds":     seconds,
		"scene_count": sceneCount,
		"summary":     duration.Describe(seconds),
		"request_id":  c.GetString("request_id"),
	})
}
