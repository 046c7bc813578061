package tts

import (
	"context"
	"fmt"

	speakapi "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces/v1"
	speak "github.com/deepgram/deepgram-go-sdk/pkg/client/speak"
)

// DeepgramTTSConfig holds configuration for the Deepgram Aura backend.
type DeepgramTTSConfig struct {
	APIKey string
	Host   string // override for self-hosted or test endpoints
	Model  string // default: "aura-asteria-en"
}

// DeepgramTTS synthesizes speech through Deepgram's one-shot speak REST API.
type DeepgramTTS struct {
	cfg DeepgramTTSConfig
	api *speakapi.Client
}

// NewDeepgramTTS creates a DeepgramTTS with sensible defaults applied.
func NewDeepgramTTS(cfg DeepgramTTSConfig) *DeepgramTTS {
	if cfg.Model == "" {
		cfg.Model = "aura-asteria-en"
	}
	rest := speak.NewREST(cfg.APIKey, &interfaces.ClientOptions{Host: cfg.Host})
	return &DeepgramTTS{
		cfg: cfg,
		api: speakapi.New(rest),
	}
}

func (d *DeepgramTTS) Name() string { return "deepgram-aura" }

// Synthesize runs one speak call and returns the MP3 audio.
func (d *DeepgramTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	if req.Input == "" {
		return nil, fmt.Errorf("no input text")
	}
	if d.cfg.APIKey == "" {
		return nil, fmt.Errorf("deepgram api key missing")
	}

	model := req.Voice
	if model == "" {
		model = d.cfg.Model
	}

	options := &interfaces.SpeakOptions{
		Model:    model,
		Encoding: "mp3",
	}

	var buf interfaces.RawResponse
	if _, err := d.api.ToStream(ctx, req.Input, options, &buf); err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}

	return &SynthesisResult{
		Audio:       buf.Bytes(),
		ContentType: "audio/mpeg",
	}, nil
}
