package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "set")
	t.Setenv("OPENAI_API_KEY", "")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "healthy", resp["status"])

	providers, ok := resp["providers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "configured", providers["gemini"])
	assert.Equal(t, "not configured", providers["openai"])
}
