package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/translate"
	"github.com/heartmarshall/polyglot-backend/internal/service/wordguide"
)

type translator interface {
	Translate(ctx context.Context, in translate.TranslateInput) (*domain.TranslationResult, error)
}

type savedMarker interface {
	MarkSaved(ctx context.Context, lang domain.Language, items []domain.GlossaryItem) ([]bool, error)
}

// TranslateHandler serves POST /api/translate.
type TranslateHandler struct {
	svc   translator
	saved savedMarker
	log   *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler. saved may be nil, in which
// case no glossary item is reported as saved.
func NewTranslateHandler(svc translator, saved savedMarker, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, saved: saved, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text       string `json:"text"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Tone       string `json:"tone"`
	Credential string `json:"credential,omitempty"`
}

type glossaryEntry struct {
	domain.GlossaryItem
	Language        domain.Language `json:"language"`
	ExampleSentence string          `json:"exampleSentence,omitempty"`
	Saved           bool            `json:"saved"`
}

type translateResponse struct {
	DetectedSource domain.Language     `json:"detectedSource"`
	Target         domain.Language     `json:"target"`
	TranslatedText string              `json:"translatedText"`
	WordGuide      []glossaryEntry     `json:"wordGuide"`
	Matches        []domain.WordMatch  `json:"matches"`
	Segments       []wordguide.Segment `json:"segments"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := translate.TranslateInput{
		Text:       req.Text,
		Source:     domain.Language(req.Source),
		Target:     domain.Language(req.Target),
		Tone:       domain.Tone(req.Tone),
		Credential: req.Credential,
	}
	result, err := h.svc.Translate(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	target := result.EffectiveTarget(in.Request().Target)
	matches := wordguide.Match(result.TranslatedText, result.WordGuide)

	writeJSON(w, http.StatusOK, translateResponse{
		DetectedSource: result.DetectedSource,
		Target:         target,
		TranslatedText: result.TranslatedText,
		WordGuide:      h.annotate(r.Context(), result, target),
		Matches:        matches,
		Segments:       wordguide.Segments(result.TranslatedText, matches),
	})
}

// annotate attributes each glossary item to a language and looks up its
// bookmark state. Lookup failures leave the item unsaved.
func (h *TranslateHandler) annotate(ctx context.Context, result *domain.TranslationResult, target domain.Language) []glossaryEntry {
	pair := wordguide.Pair{Detected: result.DetectedSource, Target: target}
	entries := make([]glossaryEntry, len(result.WordGuide))
	byLang := make(map[domain.Language][]int)
	for i, item := range result.WordGuide {
		lang := wordguide.Attribute(item, pair)
		entries[i] = glossaryEntry{
			GlossaryItem:    item,
			Language:        lang,
			ExampleSentence: wordguide.ExampleSentence(item),
		}
		byLang[lang] = append(byLang[lang], i)
	}
	if h.saved == nil {
		return entries
	}

	for lang, idx := range byLang {
		items := make([]domain.GlossaryItem, len(idx))
		for j, i := range idx {
			items[j] = result.WordGuide[i]
		}
		flags, err := h.saved.MarkSaved(ctx, lang, items)
		if err != nil {
			h.log.WarnContext(ctx, "saved-word lookup failed",
				slog.String("language", lang.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		for j, i := range idx {
			entries[i].Saved = flags[j]
		}
	}
	return entries
}
