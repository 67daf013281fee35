package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/polyglot-backend/internal/adapter/speech"
	"github.com/heartmarshall/polyglot-backend/internal/domain"
)

type speaker interface {
	Speak(ctx context.Context, text string, lang domain.Language)
}

// SpeechHandler serves POST /api/speak.
type SpeechHandler struct {
	speaker speaker
	log     *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler. A nil speaker answers 503.
func NewSpeechHandler(s speaker, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{speaker: s, log: logger.With("handler", "speech")}
}

type speakRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Speak queues the text for playback and returns at once with 202.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	if h.speaker == nil {
		writeError(w, http.StatusServiceUnavailable, "not_configured", "speech is disabled")
		return
	}

	var req speakRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		handleError(h.log, w, r, domain.NewValidationError("text", "required"))
		return
	}
	lang := domain.Language(req.Language)
	if req.Language != "" && !lang.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("language", "must be one of ko, th, en"))
		return
	}

	h.speaker.Speak(r.Context(), req.Text, lang)
	writeJSON(w, http.StatusAccepted, map[string]string{"locale": speech.Locale(lang)})
}
