package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the machine-distinguishable category of a planning failure.
// The set is closed: every failure a plan call can surface is one of these.
type ErrorKind string

const (
	ErrKindInvalidDuration   ErrorKind = "INVALID_DURATION"
	ErrKindMissingCredential ErrorKind = "MISSING_CREDENTIAL"
	ErrKindInvalidCredential ErrorKind = "INVALID_CREDENTIAL"
	ErrKindGenerationFailed  ErrorKind = "GENERATION_FAILED"
	ErrKindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	ErrKindUnexpectedShape   ErrorKind = "UNEXPECTED_SHAPE"
	ErrKindMissingSceneKeys  ErrorKind = "MISSING_SCENE_KEYS"
)

// PlanError is the single error type the planning pipeline surfaces. Every
// stage fails fast: the first error propagates unchanged to the caller, with
// no local recovery, partial results, or retries.
type PlanError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *PlanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlanError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the human-readable text for this failure. The three
// validator kinds collapse into one generic message; they stay
// distinguishable by Kind for callers that need it.
func (e *PlanError) UserMessage() string {
	switch e.Kind {
	case ErrKindInvalidDuration:
		return e.Message
	case ErrKindMissingCredential:
		return "no API key configured - set one in the request or server environment"
	case ErrKindInvalidCredential:
		return "the API key was rejected - check your credentials"
	case ErrKindGenerationFailed:
		if e.Cause != nil {
			return fmt.Sprintf("generation failed: %v", e.Cause)
		}
		return "generation failed"
	case ErrKindMalformedResponse, ErrKindUnexpectedShape, ErrKindMissingSceneKeys:
		return "the model returned an unexpected response - try again"
	default:
		return e.Message
	}
}

// AsPlanError unwraps err to a *PlanError if one is in the chain.
func AsPlanError(err error) (*PlanError, bool) {
	var planErr *PlanError
	if errors.As(err, &planErr) {
		return planErr, true
	}
	return nil, false
}

// NewInvalidDurationError reports an unparseable or non-positive duration
// expression. The offending literal is kept for diagnostics.
func NewInvalidDurationError(input string) *PlanError {
	return &PlanError{
		Kind:    ErrKindInvalidDuration,
		Message: fmt.Sprintf("could not parse duration from %q", input),
	}
}

// NewMissingCredentialError reports an empty API key. This is a precondition
// failure raised before any network attempt.
func NewMissingCredentialError() *PlanError {
	return &PlanError{
		Kind:    ErrKindMissingCredential,
		Message: "API key is required",
	}
}

// NewInvalidCredentialError reports a gateway rejection of the supplied key.
func NewInvalidCredentialError(cause error) *PlanError {
	return &PlanError{
		Kind:    ErrKindInvalidCredential,
		Message: "API key rejected by provider",
		Cause:   cause,
	}
}

// NewGenerationFailedError reports any non-credential gateway failure:
// quota, rate limit, transport, timeout. All are treated identically.
func NewGenerationFailedError(cause error) *PlanError {
	return &PlanError{
		Kind:    ErrKindGenerationFailed,
		Message: "provider request failed",
		Cause:   cause,
	}
}

// NewMalformedResponseError reports raw output that is not parseable JSON.
func NewMalformedResponseError(cause error) *PlanError {
	return &PlanError{
		Kind:    ErrKindMalformedResponse,
		Message: "response is not valid JSON",
		Cause:   cause,
	}
}

// NewUnexpectedShapeError reports a response that parsed but is not a JSON
// object (an array or a primitive).
func NewUnexpectedShapeError(got string) *PlanError {
	return &PlanError{
		Kind:    ErrKindUnexpectedShape,
		Message: fmt.Sprintf("expected a JSON object, got %s", got),
	}
}

// NewMissingSceneKeysError reports an object response with no scene_N keys.
func NewMissingSceneKeysError() *PlanError {
	return &PlanError{
		Kind:    ErrKindMissingSceneKeys,
		Message: "response object contains no scene_N keys",
	}
}
