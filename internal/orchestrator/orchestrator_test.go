package orchestrator

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Meet-ph-ai/100x/internal/llm"
	"github.com/Meet-ph-ai/100x/internal/persona"
	"github.com/Meet-ph-ai/100x/internal/session"
	"github.com/Meet-ph-ai/100x/internal/stt"
	"github.com/Meet-ph-ai/100x/internal/tts"
)

type fakeSTT struct {
	text  string
	err   error
	calls int
}

func (f *fakeSTT) Name() string { return "fake-stt" }
func (f *fakeSTT) Transcribe(_ context.Context, req stt.TranscriptionRequest) (*stt.TranscriptionResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &stt.TranscriptionResponse{Text: f.text}, nil
}

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.ChatResponse{Content: f.reply}, nil
}

func (f *fakeLLM) Provider(name string) (llm.Provider, error) {
	return nil, errors.New("not implemented")
}

type fakeTTS struct {
	audio   []byte
	err     error
	calls   int
	release chan struct{} // when non-nil, Synthesize blocks until closed
}

func (f *fakeTTS) Name() string { return "fake-tts" }
func (f *fakeTTS) Synthesize(_ context.Context, req tts.SynthesisRequest) (*tts.SynthesisResult, error) {
	f.calls++
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &tts.SynthesisResult{Audio: f.audio, ContentType: "audio/mpeg"}, nil
}

func newTestOrchestrator(s *fakeSTT, l *fakeLLM, t *fakeTTS) *Orchestrator {
	return New(Config{
		STT: s,
		LLM: l,
		TTS: t,
		Log: session.NewLog(0),
	})
}

func TestConverse_SuccessfulCycleAppendsTwoTurns(t *testing.T) {
	gen := &fakeLLM{reply: "My real strength is scale."}
	o := newTestOrchestrator(&fakeSTT{}, gen, &fakeTTS{})

	reply, err := o.Converse(context.Background(), "Tell me about your superpower")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "My real strength is scale." {
		t.Fatalf("unexpected reply %q", reply)
	}

	turns := o.Log().List()
	if len(turns) != 2 {
		t.Fatalf("expected exactly 2 turns, got %d", len(turns))
	}
	if turns[0].Role != session.RoleUser || turns[1].Role != session.RoleAssistant {
		t.Fatalf("turns out of order: %s, %s", turns[0].Role, turns[1].Role)
	}
	if turns[1].Timestamp.Before(turns[0].Timestamp) {
		t.Fatal("assistant turn predates the user turn")
	}
	if o.State() != StateIdle {
		t.Fatalf("expected idle after cycle, got %s", o.State())
	}
}

func TestConverse_DegenerateInputShortCircuits(t *testing.T) {
	for _, in := range []string{"", ".", "um", "uh...", "x"} {
		gen := &fakeLLM{reply: "should never be used"}
		o := newTestOrchestrator(&fakeSTT{}, gen, &fakeTTS{})

		reply, err := o.Converse(context.Background(), in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if reply != persona.ClarificationReply {
			t.Fatalf("%q: expected clarification reply, got %q", in, reply)
		}
		if gen.calls != 0 {
			t.Fatalf("%q: generator must not be invoked for degenerate input", in)
		}
		if o.Log().Len() != 0 {
			t.Fatalf("%q: no turns may be appended for degenerate input", in)
		}
	}
}

func TestConverse_GenerationFailureYieldsApologyTurn(t *testing.T) {
	gen := &fakeLLM{err: errors.New("quota exceeded")}
	o := newTestOrchestrator(&fakeSTT{}, gen, &fakeTTS{})

	reply, err := o.Converse(context.Background(), "Tell me your life story")
	if err != nil {
		t.Fatalf("generation failure must not surface as error, got %v", err)
	}
	if reply != persona.ApologyReply {
		t.Fatalf("expected apology, got %q", reply)
	}

	turns := o.Log().List()
	if len(turns) != 2 {
		t.Fatalf("expected user turn plus fallback assistant turn, got %d", len(turns))
	}
	if turns[1].Content != persona.ApologyReply {
		t.Fatalf("fallback not recorded as assistant turn: %q", turns[1].Content)
	}
}

func TestHandleAudio_EmptyTranscriptReturnsToIdle(t *testing.T) {
	gen := &fakeLLM{reply: "nope"}
	o := newTestOrchestrator(&fakeSTT{text: "   "}, gen, &fakeTTS{})

	res, err := o.HandleAudio(context.Background(), []byte("audio"), "in.wav")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reply != persona.ClarificationReply {
		t.Fatalf("expected clarification, got %q", res.Reply)
	}
	if o.Log().Len() != 0 {
		t.Fatal("no turn may be appended for an empty transcript")
	}
	if o.State() != StateIdle {
		t.Fatalf("expected idle, got %s", o.State())
	}
	if gen.calls != 0 {
		t.Fatal("generator must not run for an empty transcript")
	}
}

func TestHandleAudio_TranscriptionFailureIsNonFatal(t *testing.T) {
	o := newTestOrchestrator(&fakeSTT{err: errors.New("service down")}, &fakeLLM{}, &fakeTTS{})

	res, err := o.HandleAudio(context.Background(), []byte("audio"), "in.wav")
	if err != nil {
		t.Fatalf("transcription failure must be non-fatal, got %v", err)
	}
	if res.Reply != persona.ClarificationReply {
		t.Fatalf("expected clarification, got %q", res.Reply)
	}
	if o.State() != StateIdle {
		t.Fatalf("expected idle, got %s", o.State())
	}
}

func TestSpeak_GuardsNewAudioUntilPlaybackFinished(t *testing.T) {
	sttFake := &fakeSTT{text: "hello there"}
	o := newTestOrchestrator(sttFake, &fakeLLM{reply: "hi"}, &fakeTTS{audio: []byte("MP3")})

	path, err := o.Speak(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(path)

	if o.State() != StateSpeaking {
		t.Fatalf("expected speaking, got %s", o.State())
	}
	if _, err := o.HandleAudio(context.Background(), []byte("audio"), "in.wav"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy while speaking, got %v", err)
	}
	if sttFake.calls != 0 {
		t.Fatal("no transcription may be attempted while speaking")
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact must exist until playback finishes: %v", err)
	}

	o.PlaybackFinished()
	if o.State() != StateIdle {
		t.Fatalf("expected idle after playback finished, got %s", o.State())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("artifact must be deleted on playback finished")
	}

	if _, err := o.HandleAudio(context.Background(), []byte("audio"), "in.wav"); err != nil {
		t.Fatalf("audio must be accepted again after playback finished: %v", err)
	}
}

func TestSpeak_SynthesisFailureResetsGuard(t *testing.T) {
	o := newTestOrchestrator(&fakeSTT{text: "hi"}, &fakeLLM{reply: "hi"}, &fakeTTS{err: errors.New("tts down")})

	if _, err := o.Speak(context.Background(), "hi"); err == nil {
		t.Fatal("expected synthesis error to propagate")
	}
	if o.State() != StateIdle {
		t.Fatalf("speaking guard must reset on failure, got %s", o.State())
	}
}

func TestOverride_DiscardsLateSynthesisResult(t *testing.T) {
	ttsFake := &fakeTTS{audio: []byte("MP3"), release: make(chan struct{})}
	o := newTestOrchestrator(&fakeSTT{}, &fakeLLM{}, ttsFake)

	type speakOut struct {
		path string
		err  error
	}
	done := make(chan speakOut, 1)
	go func() {
		path, err := o.Speak(context.Background(), "hi")
		done <- speakOut{path, err}
	}()

	// Wait until the synthesis call is in flight, then override.
	for o.State() != StateSpeaking {
		time.Sleep(time.Millisecond)
	}
	o.Override()
	if o.State() != StateIdle {
		t.Fatalf("expected idle after override, got %s", o.State())
	}

	close(ttsFake.release)
	out := <-done
	if !errors.Is(out.err, ErrSuperseded) {
		t.Fatalf("late result must be discarded, got path=%q err=%v", out.path, out.err)
	}
}

func TestTranscribe_StatelessIgnoresSpeakingState(t *testing.T) {
	ttsFake := &fakeTTS{audio: []byte("MP3"), release: make(chan struct{})}
	sttFake := &fakeSTT{text: "still listening"}
	o := newTestOrchestrator(sttFake, &fakeLLM{}, ttsFake)

	done := make(chan struct{})
	go func() {
		defer close(done)
		o.Speak(context.Background(), "hi")
	}()
	for o.State() != StateSpeaking {
		time.Sleep(time.Millisecond)
	}

	// One-shot transcription must not be rejected by the speaking guard.
	text, err := o.Transcribe(context.Background(), []byte("audio"), "in.wav")
	if err != nil {
		t.Fatalf("stateless transcription must succeed while speaking: %v", err)
	}
	if text != "still listening" {
		t.Fatalf("unexpected transcript %q", text)
	}
	if o.State() != StateSpeaking {
		t.Fatalf("one-shot transcription must not disturb the speaking state, got %s", o.State())
	}

	close(ttsFake.release)
	<-done
	o.PlaybackFinished()
}

func TestSynthesize_StatelessReturnsToIdleImmediately(t *testing.T) {
	o := newTestOrchestrator(&fakeSTT{}, &fakeLLM{}, &fakeTTS{audio: []byte("MP3")})

	res, err := o.Synthesize(context.Background(), "short reply")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Audio) != "MP3" {
		t.Fatalf("unexpected audio %q", res.Audio)
	}
	if o.State() != StateIdle {
		t.Fatalf("stateless synthesis must not hold the speaking state, got %s", o.State())
	}
}
