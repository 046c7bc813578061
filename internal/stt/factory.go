package stt

import "github.com/Meet-ph-ai/100x/internal/config"

// New selects a transcription backend from config. Unknown backends fall back
// to the hosted Groq Whisper endpoint.
func New(cfg config.STTConfig) Provider {
	switch cfg.Backend {
	case "local":
		return NewLocalSTT(LocalSTTConfig{BaseURL: cfg.LocalBaseURL})
	default:
		return NewGroqSTT(GroqSTTConfig{
			APIKey:  cfg.GroqKey,
			BaseURL: cfg.GroqBaseURL,
			Model:   cfg.GroqModel,
		})
	}
}
