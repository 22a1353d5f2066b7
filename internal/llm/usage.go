package llm

import (
	"github.com/openai/openai-go/responses"
	"google.golang.org/genai"
)

// TokenCounts normalizes token usage reporting across provider SDKs
type TokenCounts struct {
	Input     int64
	Output    int64
	Reasoning int64
	Total     int64
}

// ExtractTokenCounts reads whichever usage payload the provider attached to
// a response. Unknown or missing payloads count as zero rather than failing
// - usage is observability data, never load-bearing.
func ExtractTokenCounts(usage any) TokenCounts {
	switch u := usage.(type) {
	case responses.ResponseUsage:
		return TokenCounts{
			Input:     u.InputTokens,
			Output:    u.OutputTokens,
			Reasoning: u.OutputTokensDetails.ReasoningTokens,
			Total:     u.TotalTokens,
		}
	case *responses.ResponseUsage:
		if u != nil {
			return TokenCounts{
				Input:     u.InputTokens,
				Output:    u.OutputTokens,
				Reasoning: u.OutputTokensDetails.ReasoningTokens,
				Total:     u.TotalTokens,
			}
		}
	case *genai.GenerateContentResponseUsageMetadata:
		if u != nil {
			return TokenCounts{
				Input:     int64(u.PromptTokenCount),
				Output:    int64(u.CandidatesTokenCount),
				Reasoning: int64(u.ThoughtsTokenCount),
				Total:     int64(u.TotalTokenCount),
			}
		}
	}
	return TokenCounts{}
}
