package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Meet-ph-ai/100x/internal/config"
	"github.com/Meet-ph-ai/100x/internal/llm"
	"github.com/Meet-ph-ai/100x/internal/orchestrator"
	"github.com/Meet-ph-ai/100x/internal/session"
	"github.com/Meet-ph-ai/100x/internal/stt"
	"github.com/Meet-ph-ai/100x/internal/tts"
	"github.com/Meet-ph-ai/100x/internal/ui"
)

func main() {
	// The terminal owns stdout; keep logs out of the way.
	logFile, err := os.OpenFile("voice.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
		slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo})))
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	orch := orchestrator.New(orchestrator.Config{
		STT:         stt.New(cfg.STT),
		LLM:         llm.NewGateway(cfg.LLM),
		TTS:         tts.New(cfg.TTS),
		Log:         session.NewLog(cfg.History.MaxTurns),
		Provider:    cfg.LLM.DefaultProvider,
		Model:       cfg.LLM.DefaultModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Language:    cfg.TTS.Language,
	})

	p := tea.NewProgram(ui.New(orch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running program:", err)
		os.Exit(1)
	}
}
