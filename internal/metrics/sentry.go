package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryMetrics mirrors the service's key signals onto Sentry spans so a
// plan trace carries its own latency, size and token numbers.
type SentryMetrics struct {
	enabled bool
}

func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // always on when Sentry itself is configured
	}
}

// RecordAPIRequest attaches one handled request to the active trace.
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", strconv.Itoa(statusCode))
	span.SetData("duration_ms", duration.Milliseconds())

	ok := statusCode < http.StatusBadRequest
	span.SetTag("success", strconv.FormatBool(ok))
	span.Status = spanStatus(ok)
}

// RecordTokenUsage pins the token breakdown of one model call to both the
// enclosing transaction and a dedicated child span.
func (m *SentryMetrics) RecordTokenUsage(ctx context.Context, model string, totalTokens, inputTokens, outputTokens, reasoningTokens int) {
	if !m.enabled {
		return
	}

	if transaction := sentry.TransactionFromContext(ctx); transaction != nil {
		transaction.SetTag("llm.model", model)
		transaction.SetTag("llm.total_tokens", strconv.Itoa(totalTokens))
		transaction.SetData("llm.total_tokens", totalTokens)
		transaction.SetData("llm.input_tokens", inputTokens)
		transaction.SetData("llm.output_tokens", outputTokens)
		transaction.SetData("llm.reasoning_tokens", reasoningTokens)
	}

	span := sentry.StartSpan(ctx, "llm.token_usage")
	defer span.Finish()

	span.Description = fmt.Sprintf("Token Usage: %s", model)
	span.SetTag("model", model)
	span.SetData("total_tokens", totalTokens)
	span.SetData("input_tokens", inputTokens)
	span.SetData("output_tokens", outputTokens)
	span.SetData("reasoning_tokens", reasoningTokens)
	span.Status = sentry.SpanStatusOK
}

// RecordScenePlan notes the size of a delivered plan.
func (m *SentryMetrics) RecordScenePlan(ctx context.Context, sceneCount int, model string) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "plan.scenes")
	defer span.Finish()

	span.Description = fmt.Sprintf("Scene Plan: %d scene(s)", sceneCount)
	span.SetTag("model", model)
	span.SetTag("scene_count", strconv.Itoa(sceneCount))
	span.SetData("scene_count", sceneCount)
	span.Status = sentry.SpanStatusOK
}

// RecordGenerationDuration notes how long one gateway round trip took.
func (m *SentryMetrics) RecordGenerationDuration(ctx context.Context, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "generation.request")
	defer span.Finish()

	span.Description = fmt.Sprintf("Generation Request: %t", success)
	span.SetTag("success", strconv.FormatBool(success))
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("success", success)
	span.Status = spanStatus(success)
}

func spanStatus(ok bool) sentry.SpanStatus {
	if ok {
		return sentry.SpanStatusOK
	}
	return sentry.SpanStatusInternalError
}
