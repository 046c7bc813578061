package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Meet-ph-ai/100x/internal/orchestrator"
)

// maxAudioUpload bounds one recorded utterance; browser recordings of a few
// seconds are well under this.
const maxAudioUpload = 25 << 20

type SpeechHandler struct {
	orch *orchestrator.Orchestrator
}

func NewSpeechHandler(orch *orchestrator.Orchestrator) *SpeechHandler {
	return &SpeechHandler{orch: orch}
}

// SpeechToText accepts a multipart upload under the "audio" field and returns
// the transcript.
func (h *SpeechHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No audio file provided"})
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No audio file provided"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioUpload))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	text, err := h.orch.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"text":    text,
	})
}

// TextToSpeech synthesizes the given text and returns base64-encoded audio.
// Empty text is rejected before any synthesis work starts, so no temporary
// file is ever created for it.
func (h *SpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Empty text"})
		return
	}

	res, err := h.orch.Synthesize(r.Context(), text)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"audio":   base64.StdEncoding.EncodeToString(res.Audio),
	})
}
