package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Meet-ph-ai/100x/internal/orchestrator"
)

type ChatHandler struct {
	orch *orchestrator.Orchestrator
}

func NewChatHandler(orch *orchestrator.Orchestrator) *ChatHandler {
	return &ChatHandler{orch: orch}
}

// Chat handles one text turn: the transcript the client already has goes in,
// the persona's reply and the full history come back.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Empty message"})
		return
	}

	reply, err := h.orch.Converse(r.Context(), message)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":              true,
		"response":             reply,
		"conversation_history": h.orch.Log().List(),
	})
}
