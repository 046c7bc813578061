// Package ui is the terminal front end for a single voice-chat session. It
// drives the shared orchestrator: one turn at a time, with the speaking state
// held until the user confirms playback or overrides it.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Meet-ph-ai/100x/internal/orchestrator"
	"github.com/Meet-ph-ai/100x/internal/session"
)

// speakingPollInterval is how often the model re-checks the orchestrator's
// state while a reply is playing.
const speakingPollInterval = 250 * time.Millisecond

// Model is the root bubbletea model. One model, one session, one orchestrator.
type Model struct {
	orch      *orchestrator.Orchestrator
	sessionID string

	input textinput.Model
	spin  spinner.Model

	processing bool
	speaking   bool
	audioPath  string
	errText    string

	width  int
	height int
}

func New(orch *orchestrator.Orchestrator) Model {
	ti := textinput.New()
	ti.Placeholder = "Say something..."
	ti.Focus()
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		orch:      orch,
		sessionID: uuid.NewString(),
		input:     ti,
		spin:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// converseCmd runs one text turn against the orchestrator.
func converseCmd(orch *orchestrator.Orchestrator, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := orch.Converse(context.Background(), text)
		return replyMsg{Reply: reply, Err: err}
	}
}

// speakCmd synthesizes the reply. The orchestrator holds Speaking until the
// playback-finished signal, and discards the result if an override happened
// while synthesis was in flight.
func speakCmd(orch *orchestrator.Orchestrator, text string) tea.Cmd {
	return func() tea.Msg {
		path, err := orch.Speak(context.Background(), text)
		return spokenMsg{Path: path, Err: err}
	}
}

func speakingTickCmd() tea.Cmd {
	return tea.Tick(speakingPollInterval, func(t time.Time) tea.Msg {
		return speakingTickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case replyMsg:
		m.processing = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.speaking = true
		return m, tea.Batch(speakCmd(m.orch, msg.Reply), speakingTickCmd())

	case spokenMsg:
		if msg.Err != nil {
			// A superseded result was already cleaned up; anything else
			// means the reply stays text-only.
			if !errors.Is(msg.Err, orchestrator.ErrSuperseded) {
				m.errText = msg.Err.Error()
			}
			m.speaking = false
			m.audioPath = ""
			return m, nil
		}
		m.audioPath = msg.Path
		return m, nil

	case speakingTickMsg:
		if !m.speaking {
			return m, nil
		}
		// An override elsewhere releases the guard; follow it.
		if m.orch.State() != orchestrator.StateSpeaking {
			m.speaking = false
			m.audioPath = ""
			return m, nil
		}
		return m, speakingTickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.orch.Override()
		return m, tea.Quit

	case "enter":
		if m.processing || m.speaking {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		m.errText = ""
		m.processing = true
		return m, tea.Batch(converseCmd(m.orch, text), m.spin.Tick)

	case " ":
		if m.speaking {
			m.orch.PlaybackFinished()
			m.speaking = false
			m.audioPath = ""
			return m, nil
		}

	case "o":
		if m.speaking {
			m.orch.Override()
			m.speaking = false
			m.audioPath = ""
			return m, nil
		}

	case "c":
		if !m.processing && !m.speaking {
			m.orch.Log().Clear()
			return m, nil
		}
	}

	if m.speaking || m.processing {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("VOICE CHAT"))
	b.WriteString(dimStyle.Render("  session " + m.sessionID[:8]))
	b.WriteString("\n\n")

	wrapW := m.width - 4
	if wrapW < 20 {
		wrapW = 20
	}
	for _, turn := range m.orch.Log().List() {
		b.WriteString(m.renderTurn(turn, wrapW))
	}

	b.WriteString("\n")
	switch {
	case m.processing:
		b.WriteString(m.spin.View() + dimStyle.Render(" thinking..."))
	case m.speaking:
		line := speakingStyle.Render("▶ speaking")
		if m.audioPath != "" {
			line += dimStyle.Render("  " + m.audioPath)
		}
		b.WriteString(line)
	default:
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(errorStyle.Render("error: "+m.errText) + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m Model) renderTurn(turn session.Turn, width int) string {
	label := userStyle.Render("you")
	if turn.Role == session.RoleAssistant {
		label = assistantStyle.Render("meet")
	}
	wrapped := wordwrap.String(turn.Content, width)
	return fmt.Sprintf("%s %s\n%s\n",
		label,
		dimStyle.Render(turn.Timestamp.Format("15:04:05")),
		wrapped)
}

func (m Model) renderFooter() string {
	var parts []string
	if m.speaking {
		parts = append(parts,
			footerKeyStyle.Render("space")+footerDescStyle.Render(" done playing"),
			footerKeyStyle.Render("o")+footerDescStyle.Render(" interrupt"))
	} else {
		parts = append(parts,
			footerKeyStyle.Render("enter")+footerDescStyle.Render(" send"),
			footerKeyStyle.Render("c")+footerDescStyle.Render(" clear"))
	}
	parts = append(parts, footerKeyStyle.Render("q")+footerDescStyle.Render(" quit"))
	return strings.Join(parts, "  ")
}
