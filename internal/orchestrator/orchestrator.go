// Package orchestrator drives the voice turn cycle: listening, transcribing,
// generating, speaking, and back to idle. It owns the only real state machine
// in the system and the cleanup of audio artifacts produced along the way.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/Meet-ph-ai/100x/internal/llm"
	"github.com/Meet-ph-ai/100x/internal/persona"
	"github.com/Meet-ph-ai/100x/internal/session"
	"github.com/Meet-ph-ai/100x/internal/stt"
	"github.com/Meet-ph-ai/100x/internal/tts"
)

// State is the orchestrator's position in the turn cycle.
type State int

const (
	StateIdle State = iota
	StateListening
	StateProcessing
	StateSpeaking
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListening:
		return "listening"
	case StateProcessing:
		return "processing"
	case StateSpeaking:
		return "speaking"
	default:
		return "unknown"
	}
}

// ErrBusy is returned when audio input arrives while a reply is still being
// spoken. The caller should wait for PlaybackFinished or use Override.
var ErrBusy = errors.New("orchestrator: reply still playing")

// ErrSuperseded is returned when a synthesis result lands after an Override
// reset it away. The result has already been discarded.
var ErrSuperseded = errors.New("orchestrator: result superseded by override")

// Config wires the three external services and the conversation log into an
// orchestrator. The log is owned by the host (HTTP server or UI session) and
// passed in by reference; there is no package-level state.
type Config struct {
	STT stt.Provider
	LLM llm.Gateway
	TTS tts.Provider
	Log *session.Log

	Persona     string // defaults to persona.SystemContext
	Provider    string // generation provider name, gateway default if empty
	Model       string
	Temperature float64
	MaxTokens   int
	Language    string // transcription language hint
}

// TurnResult is the outcome of one audio-driven turn.
type TurnResult struct {
	Transcript string
	Reply      string
}

// Orchestrator sequences one conversation. Safe for concurrent use; state
// transitions and the pending-artifact reference are mutex guarded.
type Orchestrator struct {
	cfg Config

	mu           sync.Mutex
	state        State
	pendingAudio string // synthesized artifact awaiting deletion
	epoch        uint64 // bumped by Override to invalidate in-flight results
}

// New creates an orchestrator with sampling defaults matching the original
// demo (temperature 0.6, 200 max tokens).
func New(cfg Config) *Orchestrator {
	if cfg.Persona == "" {
		cfg.Persona = persona.SystemContext
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.6
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 200
	}
	return &Orchestrator{cfg: cfg}
}

// State reports the current position in the turn cycle.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Log exposes the session log backing this conversation.
func (o *Orchestrator) Log() *session.Log {
	return o.cfg.Log
}

// HandleAudio runs a full voice turn: transcribe, filter, generate. While a
// previous reply is still speaking the input is rejected with ErrBusy and no
// transcription is attempted. Transcription failures and empty transcripts
// are non-fatal: nothing is logged to the session and the clarification
// prompt comes back as the reply.
func (o *Orchestrator) HandleAudio(ctx context.Context, audio []byte, filename string) (*TurnResult, error) {
	o.mu.Lock()
	if o.state == StateSpeaking {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.state = StateListening
	o.mu.Unlock()

	tr, err := o.cfg.STT.Transcribe(ctx, stt.TranscriptionRequest{
		Audio:    audio,
		Filename: filename,
		Language: o.cfg.Language,
	})
	if err != nil {
		slog.Warn("transcription failed, treating as no speech", "error", err)
		o.setState(StateIdle)
		return &TurnResult{Reply: persona.ClarificationReply}, nil
	}

	text := strings.TrimSpace(tr.Text)
	if text == "" {
		o.setState(StateIdle)
		return &TurnResult{Reply: persona.ClarificationReply}, nil
	}

	reply, err := o.Converse(ctx, text)
	if err != nil {
		return nil, err
	}
	return &TurnResult{Transcript: text, Reply: reply}, nil
}

// Converse answers one user message. Degenerate input short-circuits to the
// clarification reply without touching the generation service or the session
// log. Generation failures are recovered with the canned apology, recorded as
// a normal assistant turn; the caller never sees them as errors.
func (o *Orchestrator) Converse(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if IsDegenerate(text) {
		o.setState(StateIdle)
		return persona.ClarificationReply, nil
	}

	o.setState(StateProcessing)
	defer o.setState(StateIdle)

	o.cfg.Log.Append(session.Turn{Role: session.RoleUser, Content: text})

	resp, err := o.cfg.LLM.Chat(ctx, llm.ChatRequest{
		Provider: o.cfg.Provider,
		Model:    o.cfg.Model,
		Messages: []llm.Message{
			{Role: "system", Content: o.cfg.Persona},
			{Role: "user", Content: text},
		},
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	})

	reply := persona.ApologyReply
	if err != nil {
		slog.Warn("generation failed, using fallback reply", "error", err)
	} else if s := strings.TrimSpace(resp.Content); s != "" {
		reply = s
	}

	o.cfg.Log.Append(session.Turn{Role: session.RoleAssistant, Content: reply})
	return reply, nil
}

// Transcribe is the one-shot adapter call used by the stateless API: no turn
// bookkeeping and no speaking gate, each request stands alone. Errors surface
// to the caller.
func (o *Orchestrator) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	tr, err := o.cfg.STT.Transcribe(ctx, stt.TranscriptionRequest{
		Audio:    audio,
		Filename: filename,
		Language: o.cfg.Language,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(tr.Text), nil
}

// Synthesize is the one-shot synthesis call used by the stateless API. The
// orchestrator passes through Speaking only for the duration of the call;
// with no playback awareness it returns to Idle immediately.
func (o *Orchestrator) Synthesize(ctx context.Context, text string) (*tts.SynthesisResult, error) {
	o.setState(StateSpeaking)
	defer o.setState(StateIdle)

	res, err := o.cfg.TTS.Synthesize(ctx, tts.SynthesisRequest{Input: text, Language: o.cfg.Language})
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return res, nil
}

// Speak synthesizes a reply for the interactive shape and holds the Speaking
// state until PlaybackFinished or Override. The synthesized audio is written
// to a temporary file whose deletion this orchestrator now owns; the returned
// path stays valid until playback completion is confirmed. A synthesis result
// arriving after an Override is deleted and reported as ErrSuperseded.
func (o *Orchestrator) Speak(ctx context.Context, text string) (string, error) {
	o.mu.Lock()
	epoch := o.epoch
	o.state = StateSpeaking
	o.mu.Unlock()

	res, err := o.cfg.TTS.Synthesize(ctx, tts.SynthesisRequest{Input: text, Language: o.cfg.Language})
	if err != nil {
		// Reset the speaking guard so the conversation stays usable.
		o.mu.Lock()
		if o.state == StateSpeaking && o.epoch == epoch {
			o.state = StateIdle
		}
		o.mu.Unlock()
		return "", fmt.Errorf("synthesize: %w", err)
	}

	tmp, err := os.CreateTemp("", "reply-*.mp3")
	if err != nil {
		o.setState(StateIdle)
		return "", fmt.Errorf("create audio artifact: %w", err)
	}
	path := tmp.Name()
	if _, err := tmp.Write(res.Audio); err != nil {
		tmp.Close()
		os.Remove(path)
		o.setState(StateIdle)
		return "", fmt.Errorf("write audio artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		o.setState(StateIdle)
		return "", fmt.Errorf("close audio artifact: %w", err)
	}

	o.mu.Lock()
	if o.epoch != epoch {
		// An override won the race; the late result is never applied.
		o.mu.Unlock()
		os.Remove(path)
		return "", ErrSuperseded
	}
	o.pendingAudio = path
	o.mu.Unlock()

	return path, nil
}

// PlaybackFinished is the explicit completion signal from the playback
// surface. It deletes the pending artifact and releases the speaking guard.
func (o *Orchestrator) PlaybackFinished() {
	o.mu.Lock()
	path := o.pendingAudio
	o.pendingAudio = ""
	o.state = StateIdle
	o.mu.Unlock()

	removeArtifact(path)
}

// Override is the manual "ready to speak" reset. It forces the orchestrator
// back to Idle regardless of unfinished playback and invalidates any
// synthesis still in flight. It does not cancel the network call itself.
func (o *Orchestrator) Override() {
	o.mu.Lock()
	o.epoch++
	path := o.pendingAudio
	o.pendingAudio = ""
	o.state = StateIdle
	o.mu.Unlock()

	removeArtifact(path)
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// removeArtifact deletes best-effort; a leaked temp file is preferable to a
// failed turn.
func removeArtifact(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Debug("failed to remove audio artifact", "path", path, "error", err)
	}
}
