package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polyglot-backend/internal/credential"
)

type credentialStore interface {
	Set(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type credentialStatus interface {
	Status(ctx context.Context) (credential.Status, error)
}

// CredentialHandler stores the translation API key and reports which key is
// active. The key itself is never returned.
type CredentialHandler struct {
	store  credentialStore
	status credentialStatus
	log    *slog.Logger
}

// NewCredentialHandler creates a CredentialHandler.
func NewCredentialHandler(store credentialStore, status credentialStatus, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{store: store, status: status, log: logger.With("handler", "credential")}
}

type credentialRequest struct {
	Key string `json:"key"`
}

type credentialStatusResponse struct {
	Configured bool   `json:"configured"`
	Source     string `json:"source"`
	Masked     string `json:"masked,omitempty"`
}

// Status handles GET /api/credential.
func (h *CredentialHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.status.Status(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, credentialStatusResponse{
		Configured: st.Configured,
		Source:     string(st.Source),
		Masked:     st.Masked,
	})
}

// Set handles PUT /api/credential.
func (h *CredentialHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.store.Set(r.Context(), req.Key); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "credential stored")
	h.Status(w, r)
}

// Clear handles DELETE /api/credential.
func (h *CredentialHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
