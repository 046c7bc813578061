package stt

import "context"

// TranscriptionRequest carries one utterance of recorded audio. The bytes are
// opaque to this package; Filename is only a format hint for the service.
type TranscriptionRequest struct {
	Audio    []byte
	Filename string // e.g. "recording.wav"
	Language string
	Prompt   string
}

// TranscriptionResponse is the transcript returned by the service.
type TranscriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// Provider abstracts a speech-to-text backend.
type Provider interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error)
	Name() string
}
