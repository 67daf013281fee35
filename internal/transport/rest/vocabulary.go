package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/listview"
	"github.com/heartmarshall/polyglot-backend/internal/service/vocabulary"
)

type vocabularyService interface {
	List(ctx context.Context, input vocabulary.ListInput) (listview.Page, error)
	Toggle(ctx context.Context, input vocabulary.ToggleInput) (*vocabulary.ToggleResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, input vocabulary.DeleteManyInput) (int, error)
	SavedWords(ctx context.Context, lang domain.Language) ([]string, error)
	IsSaved(ctx context.Context, word string, lang domain.Language) (bool, error)
}

// VocabularyHandler serves the saved-word endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type savedWordResponse struct {
	ID            string    `json:"id"`
	Word          string    `json:"word"`
	Meaning       string    `json:"meaning"`
	Pronunciation *string   `json:"pronunciation,omitempty"`
	Language      string    `json:"language"`
	CreatedAt     time.Time `json:"createdAt"`
}

type listResponse struct {
	Items       []savedWordResponse `json:"items"`
	TotalItems  int                 `json:"totalItems"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
}

type toggleRequest struct {
	Word          string  `json:"word"`
	Meaning       string  `json:"meaning"`
	Pronunciation *string `json:"pronunciation"`
	Language      string  `json:"language"`
}

type toggleResponse struct {
	Action string            `json:"action"`
	Word   savedWordResponse `json:"word"`
}

type bulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// List handles GET /api/vocabulary?language=&search=&sort=&order=&page=&page_size=.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := intParam(q.Get("page"), "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	pageSize, err := intParam(q.Get("page_size"), "page_size")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.List(r.Context(), vocabulary.ListInput{
		Language: domain.Language(q.Get("language")),
		Search:   q.Get("search"),
		Column:   domain.SortColumn(q.Get("sort")),
		Order:    domain.SortOrder(q.Get("order")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]savedWordResponse, len(result.Items))
	for i, sw := range result.Items {
		items[i] = toSavedWordResponse(sw)
	}
	writeJSON(w, http.StatusOK, listResponse{
		Items:       items,
		TotalItems:  result.TotalItems,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// Toggle handles POST /api/vocabulary/toggle.
func (h *VocabularyHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Toggle(r.Context(), vocabulary.ToggleInput{
		Word:          req.Word,
		Meaning:       req.Meaning,
		Pronunciation: req.Pronunciation,
		Language:      domain.Language(req.Language),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if result.Action == domain.ToggleActionSave {
		status = http.StatusCreated
	}
	writeJSON(w, status, toggleResponse{
		Action: result.Action.String(),
		Word:   toSavedWordResponse(result.Word),
	})
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteMany handles POST /api/vocabulary/delete.
func (h *VocabularyHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req bulkDeleteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.DeleteMany(r.Context(), vocabulary.DeleteManyInput{IDs: req.IDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

// Saved handles GET /api/vocabulary/saved?language=[&word=]. With a word it
// answers whether that word is saved; without one it lists every saved word.
func (h *VocabularyHandler) Saved(w http.ResponseWriter, r *http.Request) {
	lang := domain.Language(r.URL.Query().Get("language"))

	if word := r.URL.Query().Get("word"); word != "" {
		saved, err := h.svc.IsSaved(r.Context(), word, lang)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"word": word, "language": lang, "saved": saved})
		return
	}

	words, err := h.svc.SavedWords(r.Context(), lang)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"language": lang, "words": words})
}

func toSavedWordResponse(w domain.SavedWord) savedWordResponse {
	return savedWordResponse{
		ID:            w.ID.String(),
		Word:          w.Word,
		Meaning:       w.Meaning,
		Pronunciation: w.Pronunciation,
		Language:      w.Language.String(),
		CreatedAt:     w.CreatedAt,
	}
}

func intParam(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be an integer")
	}
	return n, nil
}
