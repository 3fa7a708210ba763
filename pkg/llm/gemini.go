package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiComposer is the fallback composer for deployments without an
// OpenRouter key. Forcing a JSON MIME type keeps fence stripping a no-op
// in the common case.
type GeminiComposer struct {
	client *genai.Client
	model  string
}

func NewGeminiComposer(ctx context.Context, apiKey, model string) (*GeminiComposer, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiComposer{client: client, model: model}, nil
}

func (c *GeminiComposer) ComposeItinerary(ctx context.Context, req ComposeRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(systemPrompt+"\n\n"+buildPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
