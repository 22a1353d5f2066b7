package llm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// ErrInvalidCredential marks a provider failure caused by a rejected API
// key. Classification is structural - HTTP status codes and typed error
// details from the SDKs - never substring matching on error messages.
// Callers test with errors.Is.
var ErrInvalidCredential = errors.New("invalid credential")

// Gemini reports bad keys as 400 INVALID_ARGUMENT with an ErrorInfo detail
// rather than a 401.
const (
	geminiReasonKeyInvalid = "API_KEY_INVALID"
	geminiReasonKeyExpired = "API_KEY_EXPIRED"
)

func isCredentialStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// classifyGeminiError wraps err with ErrInvalidCredential when the genai
// SDK reports a credential problem. Everything else passes through.
func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	if isCredentialStatus(apiErr.Code) {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	for _, detail := range apiErr.Details {
		reason, _ := detail["reason"].(string)
		if reason == geminiReasonKeyInvalid || reason == geminiReasonKeyExpired {
			return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
		}
	}
	return err
}

// classifyOpenAIError wraps err with ErrInvalidCredential when the OpenAI
// SDK reports a credential problem. Everything else passes through.
func classifyOpenAIError(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	if isCredentialStatus(apiErr.StatusCode) {
		return fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	return err
}
