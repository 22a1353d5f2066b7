package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sceneforge/sceneplan-api/internal/llm"
)

func TestCalculateCost(t *testing.T) {
	cost := CalculateCost("gemini-2.5-flash", llm.TokenCounts{Input: 1000, Output: 2000})
	assert.InDelta(t, gemini25FlashInputPrice+2*gemini25FlashOutputPrice, cost, 1e-9)
}

func TestCalculateCostReasoningBilledAsInput(t *testing.T) {
	base := CalculateCost("gpt-4o", llm.TokenCounts{Input: 1000, Output: 1000})
	withReasoning := CalculateCost("gpt-4o", llm.TokenCounts{Input: 1000, Output: 1000, Reasoning: 1000})
	assert.InDelta(t, gpt4oInputPrice, withReasoning-base, 1e-9)
}

func TestCalculateCostUnknownModelFallsBack(t *testing.T) {
	counts := llm.TokenCounts{Input: 500, Output: 500}
	assert.Equal(t, CalculateCost("gemini-2.5-flash", counts), CalculateCost("mystery-model", counts))
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.001500", FormatCost(0.0015))
	assert.Equal(t, "$0.000000", FormatCost(0))
}
