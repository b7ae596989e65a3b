package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"news-digest/internal/domain/ports"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIConfig configures the chat completion summarizer.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// OpenAI summarizes text with the chat completions API.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    ports.Logger
}

var _ ports.Summarizer = (*OpenAI)(nil)

// NewOpenAI builds an OpenAI summarizer.
func NewOpenAI(cfg OpenAIConfig, logger ports.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAI{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Summarize sends one article text and returns the generated summary.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(text)},
		},
		MaxTokens:   o.maxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	summary := cleanOutput(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("openai returned empty text (finish reason %q)", resp.Choices[0].FinishReason)
	}

	if o.logger != nil {
		o.logger.Debug(ctx, "openai summary generated", "model", o.model, "tokens", resp.Usage.TotalTokens)
	}
	return summary, nil
}
