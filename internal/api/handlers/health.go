package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"providers": gin.H{
			"gemini": keyStatus("GEMINI_API_KEY"),
			"openai": keyStatus("OPENAI_API_KEY"),
		},
	})
}

// keyStatus reports whether a server-level fallback key is configured.
// Requests may still carry their own keys either way.
func keyStatus(envVar string) string {
	if strings.TrimSpace(os.Getenv(envVar)) != "" {
		return "configured"
	}
	return "not configured"
}
