package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFormatFieldsSortedAndStable(t *testing.T) {
	fields := Fields{
		"status_code": 200,
		"duration_ms": 12.345,
		"path":        "/api/v1/scene-plans",
	}

	got := formatFields(fields)
	assert.Equal(t, "{duration_ms=12.35, path=/api/v1/scene-plans, status_code=200}", got)
	assert.Equal(t, got, formatFields(fields))
}

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "", formatFields(Fields{}))
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/scene-plans", nil)
	c.Set("request_id", "req-123")
	c.Set("user_id", uint(7))

	fields := WithContext(c)
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/scene-plans", fields["path"])
	assert.Equal(t, uint(7), fields["user_id"])
}
