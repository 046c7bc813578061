package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider talks to Groq through its OpenAI-compatible endpoint.
type GroqProvider struct {
	client *openai.Client
}

// NewGroqProvider creates a GroqProvider. baseURL may be overridden for
// compatible endpoints and tests.
func NewGroqProvider(apiKey, baseURL string) *GroqProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	cfg.BaseURL = baseURL
	return &GroqProvider{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (p *GroqProvider) Name() string { return "groq" }

func (p *GroqProvider) Models() []string {
	return []string{
		"llama-3.3-70b-versatile", "llama-3.1-8b-instant", "gemma2-9b-it",
	}
}

func (p *GroqProvider) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	msgs := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	oReq := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: msgs,
	}
	if req.Temperature > 0 {
		oReq.Temperature = float32(req.Temperature)
	}
	if req.MaxTokens > 0 {
		oReq.MaxTokens = req.MaxTokens
	}
	if req.TopP > 0 {
		oReq.TopP = float32(req.TopP)
	}
	if len(req.Stop) > 0 {
		oReq.Stop = req.Stop
	}

	resp, err := p.client.CreateChatCompletion(ctx, oReq)
	if err != nil {
		return nil, fmt.Errorf("groq chat: %w", err)
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	return &ChatResponse{
		ID:           resp.ID,
		Provider:     "groq",
		Model:        resp.Model,
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
		LatencyMs:    time.Since(start).Milliseconds(),
	}, nil
}
