package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"news-digest/internal/domain/ports"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// contentGenerator is the subset of *genai.GenerativeModel used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini summarizes text with Google's generative language API.
type Gemini struct {
	client    *genai.Client
	generator contentGenerator
	model     string
	logger    ports.Logger
}

var _ ports.Summarizer = (*Gemini)(nil)

// NewGemini creates a Gemini client. Callers must Close it.
func NewGemini(ctx context.Context, apiKey, model string, maxTokens int, logger ports.Logger) (*Gemini, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	gm := client.GenerativeModel(model)
	gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	gm.SetTemperature(0.3)
	if maxTokens > 0 {
		gm.SetMaxOutputTokens(int32(maxTokens))
	}

	return &Gemini{client: client, generator: gm, model: model, logger: logger}, nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Summarize sends one article text and returns the generated summary.
func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := g.generator.GenerateContent(ctx, genai.Text(buildPrompt(text)))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	summary := cleanOutput(firstText(resp))
	if summary == "" {
		return "", errors.New("gemini returned empty text")
	}

	if g.logger != nil {
		g.logger.Debug(ctx, "gemini summary generated", "model", g.model)
	}
	return summary, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if strings.TrimSpace(b.String()) != "" {
			return b.String()
		}
	}
	return ""
}
