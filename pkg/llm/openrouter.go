package llm

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterComposer calls OpenRouter's OpenAI-compatible chat-completions
// endpoint through the go-openai client with a custom base URL.
type OpenRouterComposer struct {
	client *openai.Client
	model  string
}

// attribution headers OpenRouter uses for app ranking
type refererTransport struct {
	base    http.RoundTripper
	referer string
}

func (t *refererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", t.referer)
	req.Header.Set("X-Title", "TripWeaver")
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func NewOpenRouterComposer(apiKey, baseURL, model, referer string) *OpenRouterComposer {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Transport: &refererTransport{referer: referer},
	}
	return &OpenRouterComposer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenRouterComposer) ComposeItinerary(ctx context.Context, req ComposeRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
