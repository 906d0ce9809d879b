// Package openai implements the external analysis service over the OpenAI
// chat completions API.
package openai

import (
	"context"
	"fmt"
	"os"

	goopenai "github.com/sashabaranov/go-openai"

	"specmap/internal/ports"
)

// Analyzer implements ports.AnalysisService using chat completions.
type Analyzer struct {
	client *goopenai.Client
}

var _ ports.AnalysisService = (*Analyzer)(nil)

// NewAnalyzer creates an analyzer. The API key comes from the OPENAI_API_KEY
// environment variable; baseURL overrides the endpoint for compatible
// gateways and may be empty.
func NewAnalyzer(baseURL string) (*Analyzer, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Analyzer{client: goopenai.NewClientWithConfig(cfg)}, nil
}

// Complete performs one synchronous analysis call and reports token usage.
func (a *Analyzer) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		MaxCompletionTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("analysis service returned no choices")
	}

	return &ports.CompletionResult{
		RawText:      resp.Choices[0].Message.Content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
