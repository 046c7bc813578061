package tts

import "context"

// SynthesisRequest is the text to speak plus voice selection hints.
type SynthesisRequest struct {
	Input    string  `json:"input"`
	Voice    string  `json:"voice,omitempty"`
	Language string  `json:"language,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
}

// SynthesisResult is a standalone playable audio payload. Providers never
// delete artifacts derived from it; cleanup belongs to whoever schedules
// playback.
type SynthesisResult struct {
	Audio       []byte
	ContentType string
}

// Provider abstracts a text-to-speech backend. All implementations are
// synchronous blocking calls.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
