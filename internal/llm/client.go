package llm

import (
	"context"
)

// LLMClient is an interface for invoking multimodal models.
// Vision providers depend on it so tests can run without real API calls.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
