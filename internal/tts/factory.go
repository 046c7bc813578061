package tts

import "github.com/Meet-ph-ai/100x/internal/config"

// New selects a synthesis backend from config. Unknown backends fall back to
// the keyless Google Translate voice, matching the original demo.
func New(cfg config.TTSConfig) Provider {
	switch cfg.Backend {
	case "openai":
		return NewOpenAITTS(OpenAITTSConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Voice:   cfg.OpenAIVoice,
		})
	case "deepgram":
		return NewDeepgramTTS(DeepgramTTSConfig{
			APIKey: cfg.DeepgramKey,
			Model:  cfg.DeepgramModel,
		})
	default:
		return NewGoogleTTS(GoogleTTSConfig{
			Language:  cfg.Language,
			AccentTLD: cfg.AccentTLD,
		})
	}
}
