package ports

import "context"

// CompletionRequest carries the prompts and budget of one analysis call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Model        string
	MaxTokens    int
}

// CompletionResult is the raw text and token accounting of one call.
type CompletionResult struct {
	RawText      string
	InputTokens  int
	OutputTokens int
}

// AnalysisService is the external language-model service. The core treats
// it as an opaque synchronous call; authentication, endpoint selection and
// transport are adapter concerns. Implementations must honor ctx
// cancellation so callers can bound the call with a timeout.
type AnalysisService interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}
