package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Meet-ph-ai/100x/internal/api/handlers"
	"github.com/Meet-ph-ai/100x/internal/api/middleware"
	"github.com/Meet-ph-ai/100x/internal/config"
	"github.com/Meet-ph-ai/100x/internal/orchestrator"
)

type Router struct {
	mux  *chi.Mux
	cfg  *config.Config
	orch *orchestrator.Orchestrator
}

func NewRouter(cfg *config.Config, orch *orchestrator.Orchestrator) *Router {
	return &Router{
		mux:  chi.NewRouter(),
		cfg:  cfg,
		orch: orch,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	chatH := handlers.NewChatHandler(rt.orch)
	speechH := handlers.NewSpeechHandler(rt.orch)
	historyH := handlers.NewHistoryHandler(rt.orch.Log())
	healthH := handlers.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatH.Chat)
		r.Post("/speech-to-text", speechH.SpeechToText)
		r.Post("/text-to-speech", speechH.TextToSpeech)
		r.Get("/health", healthH.Health)
		r.Get("/history", historyH.Get)
		r.Delete("/history", historyH.Clear)
	})

	return r
}
