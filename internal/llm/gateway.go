package llm

import (
	"context"
	"fmt"

	"github.com/Meet-ph-ai/100x/internal/config"
)

type gateway struct {
	providers       map[string]Provider
	defaultProvider string
}

// NewGateway builds the provider map from config. Unlike a general-purpose
// gateway there is no retry and no fallback chain here: each turn gets exactly
// one generation attempt, and the orchestrator recovers from failures with a
// canned reply.
func NewGateway(cfg config.LLMConfig) Gateway {
	g := &gateway{
		providers:       make(map[string]Provider),
		defaultProvider: cfg.DefaultProvider,
	}

	if cfg.GroqKey != "" {
		g.providers["groq"] = NewGroqProvider(cfg.GroqKey, cfg.GroqBaseURL)
	}
	if cfg.AnthropicKey != "" {
		g.providers["anthropic"] = NewAnthropicProvider(cfg.AnthropicKey)
	}

	return g
}

func (g *gateway) Provider(name string) (Provider, error) {
	p, ok := g.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", name)
	}
	return p, nil
}

func (g *gateway) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	providerName := req.Provider
	if providerName == "" {
		providerName = g.defaultProvider
	}

	p, err := g.Provider(providerName)
	if err != nil {
		return nil, err
	}
	return p.ChatCompletion(ctx, req)
}
