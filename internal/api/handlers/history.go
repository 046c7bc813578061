package handlers

import (
	"net/http"

	"github.com/Meet-ph-ai/100x/internal/session"
)

type HistoryHandler struct {
	log *session.Log
}

func NewHistoryHandler(log *session.Log) *HistoryHandler {
	return &HistoryHandler{log: log}
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"history": h.log.List(),
	})
}

// Clear wipes the conversation. No confirmation, no soft delete.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.log.Clear()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "History cleared",
	})
}
