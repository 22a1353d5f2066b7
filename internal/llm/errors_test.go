package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClassifyGeminiError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCredential bool
	}{
		{
			name:           "401 unauthorized",
			err:            genai.APIError{Code: 401, Message: "unauthorized", Status: "UNAUTHENTICATED"},
			wantCredential: true,
		},
		{
			name:           "403 forbidden",
			err:            genai.APIError{Code: 403, Message: "forbidden", Status: "PERMISSION_DENIED"},
			wantCredential: true,
		},
		{
			name: "400 with API_KEY_INVALID detail",
			err: genai.APIError{
				Code:    400,
				Message: "API key not valid. Please pass a valid API key.",
				Status:  "INVALID_ARGUMENT",
				Details: []map[string]any{
					{
						"@type":  "type.googleapis.com/google.rpc.ErrorInfo",
						"reason": "API_KEY_INVALID",
						"domain": "googleapis.com",
					},
				},
			},
			wantCredential: true,
		},
		{
			name: "400 with expired key detail",
			err: genai.APIError{
				Code:    400,
				Status:  "INVALID_ARGUMENT",
				Details: []map[string]any{{"reason": "API_KEY_EXPIRED"}},
			},
			wantCredential: true,
		},
		{
			name: "400 with unrelated detail",
			err: genai.APIError{
				Code:    400,
				Message: "bad request body",
				Status:  "INVALID_ARGUMENT",
				Details: []map[string]any{{"reason": "FIELD_VIOLATION"}},
			},
			wantCredential: false,
		},
		{
			name:           "429 quota is not a credential problem",
			err:            genai.APIError{Code: 429, Message: "quota exceeded", Status: "RESOURCE_EXHAUSTED"},
			wantCredential: false,
		},
		{
			name:           "wrapped API error still classified",
			err:            fmt.Errorf("request failed: %w", genai.APIError{Code: 401, Status: "UNAUTHENTICATED"}),
			wantCredential: true,
		},
		{
			name:           "plain error passes through",
			err:            errors.New("connection refused"),
			wantCredential: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyGeminiError(tt.err)
			assert.Equal(t, tt.wantCredential, errors.Is(classified, ErrInvalidCredential))
			// The original error is always preserved in the chain.
			if apiErr := new(genai.APIError); errors.As(tt.err, apiErr) {
				assert.True(t, errors.As(classified, new(genai.APIError)))
			}
		})
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	newAPIError := func(status int) *openai.Error {
		req, _ := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/responses", nil)
		return &openai.Error{
			StatusCode: status,
			Request:    req,
			Response:   &http.Response{StatusCode: status},
		}
	}

	tests := []struct {
		name           string
		err            error
		wantCredential bool
	}{
		{name: "401 unauthorized", err: newAPIError(http.StatusUnauthorized), wantCredential: true},
		{name: "403 forbidden", err: newAPIError(http.StatusForbidden), wantCredential: true},
		{name: "429 rate limit", err: newAPIError(http.StatusTooManyRequests), wantCredential: false},
		{name: "500 server error", err: newAPIError(http.StatusInternalServerError), wantCredential: false},
		{name: "plain error passes through", err: errors.New("dial tcp: timeout"), wantCredential: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyOpenAIError(tt.err)
			assert.Equal(t, tt.wantCredential, errors.Is(classified, ErrInvalidCredential))
		})
	}
}

func TestClassificationIgnoresMessageText(t *testing.T) {
	// An error that merely talks about API keys is not a credential failure.
	err := errors.New("the API key quota dashboard is unavailable")

	assert.False(t, errors.Is(classifyGeminiError(err), ErrInvalidCredential))
	assert.False(t, errors.Is(classifyOpenAIError(err), ErrInvalidCredential))
}
