package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Meet-ph-ai/100x/internal/llm"
	"github.com/Meet-ph-ai/100x/internal/orchestrator"
	"github.com/Meet-ph-ai/100x/internal/session"
	"github.com/Meet-ph-ai/100x/internal/stt"
	"github.com/Meet-ph-ai/100x/internal/tts"
)

type fakeGen struct{}

func (fakeGen) Chat(context.Context, llm.ChatRequest) (*llm.ChatResponse, error) {
	return &llm.ChatResponse{Content: "a reply"}, nil
}
func (fakeGen) Provider(string) (llm.Provider, error) { return nil, nil }

type fakeSTT struct{}

func (fakeSTT) Name() string { return "fake" }
func (fakeSTT) Transcribe(context.Context, stt.TranscriptionRequest) (*stt.TranscriptionResponse, error) {
	return &stt.TranscriptionResponse{Text: "hello"}, nil
}

type fakeTTS struct{}

func (fakeTTS) Name() string { return "fake" }
func (fakeTTS) Synthesize(context.Context, tts.SynthesisRequest) (*tts.SynthesisResult, error) {
	return &tts.SynthesisResult{Audio: []byte("mp3"), ContentType: "audio/mpeg"}, nil
}

func newTestModel() Model {
	orch := orchestrator.New(orchestrator.Config{
		STT: fakeSTT{},
		LLM: fakeGen{},
		TTS: fakeTTS{},
		Log: session.NewLog(0),
	})
	return New(orch)
}

func keyPress(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestEnterWithEmptyInputDoesNothing(t *testing.T) {
	m := newTestModel()
	m, cmd := keyPress(m, "enter")
	if cmd != nil {
		t.Fatal("empty input must not start a turn")
	}
	if m.processing {
		t.Fatal("model must stay idle")
	}
}

func TestEnterStartsTurn(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("what is your superpower")

	m, cmd := keyPress(m, "enter")
	if cmd == nil {
		t.Fatal("expected a command to run the turn")
	}
	if !m.processing {
		t.Fatal("model must be processing after enter")
	}
	if m.input.Value() != "" {
		t.Fatal("input must be cleared on send")
	}
}

func TestReplyTransitionsToSpeaking(t *testing.T) {
	m := newTestModel()
	m.processing = true

	next, cmd := m.Update(replyMsg{Reply: "a reply"})
	m = next.(Model)
	if m.processing {
		t.Fatal("processing must end once the reply arrives")
	}
	if !m.speaking {
		t.Fatal("model must enter speaking after a reply")
	}
	if cmd == nil {
		t.Fatal("expected synthesis and tick commands")
	}
}

func TestSpaceFinishesPlayback(t *testing.T) {
	m := newTestModel()
	m.speaking = true
	m.audioPath = "/tmp/reply-test.mp3"

	m, _ = keyPress(m, " ")
	if m.speaking {
		t.Fatal("space must release the speaking state")
	}
	if m.audioPath != "" {
		t.Fatal("artifact reference must be dropped")
	}
	if got := m.orch.State(); got != orchestrator.StateIdle {
		t.Fatalf("orchestrator must be idle, got %v", got)
	}
}

func TestOverrideInterruptsSpeaking(t *testing.T) {
	m := newTestModel()
	m.speaking = true

	m, _ = keyPress(m, "o")
	if m.speaking {
		t.Fatal("override must release the speaking state")
	}
	if got := m.orch.State(); got != orchestrator.StateIdle {
		t.Fatalf("orchestrator must be idle after override, got %v", got)
	}
}

func TestClearEmptiesHistory(t *testing.T) {
	m := newTestModel()
	m.orch.Log().Append(session.Turn{Role: session.RoleUser, Content: "hi"})
	m.orch.Log().Append(session.Turn{Role: session.RoleAssistant, Content: "hello"})

	m, _ = keyPress(m, "c")
	if m.orch.Log().Len() != 0 {
		t.Fatal("clear key must wipe the conversation log")
	}
}

func TestEnterIgnoredWhileSpeaking(t *testing.T) {
	m := newTestModel()
	m.speaking = true
	m.input.SetValue("barge in")

	m, cmd := keyPress(m, "enter")
	if cmd != nil || m.processing {
		t.Fatal("input must be rejected while a reply is playing")
	}
}
