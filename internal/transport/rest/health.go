package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/polyglot-backend/internal/credential"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes. Both
// dependencies are optional. Without a database the vocabulary store is
// "not_configured" and readiness ignores it. The credential is reported but
// never fails a probe, since a key can be supplied per request.
type HealthHandler struct {
	db      dbPinger
	creds   credentialStatus
	version string
}

// NewHealthHandler creates a HealthHandler. db and creds may be nil.
func NewHealthHandler(db dbPinger, creds credentialStatus, version string) *HealthHandler {
	return &HealthHandler{db: db, creds: creds, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Source  string `json:"source,omitempty"`
}

func (c CompStatus) down() bool { return c.Status == "down" }

// Live handles GET /live.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready handles GET /ready: 503 only when a configured database is
// unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	h.respond(w, HealthResponse{}, h.database(ctx))
}

// Health handles GET /health with per-component detail and the build
// version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	db := h.database(ctx)
	resp := HealthResponse{
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
	}
	if h.creds != nil {
		resp.Components["credential"] = h.credential(ctx)
	}
	h.respond(w, resp, db)
}

func (h *HealthHandler) respond(w http.ResponseWriter, resp HealthResponse, db CompStatus) {
	resp.Status, resp.Timestamp = "ok", time.Now()
	status := http.StatusOK
	if db.down() {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) database(ctx context.Context) CompStatus {
	if h.db == nil {
		return CompStatus{Status: "not_configured"}
	}
	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) credential(ctx context.Context) CompStatus {
	st, err := h.creds.Status(ctx)
	switch {
	case err != nil:
		return CompStatus{Status: "unreadable"}
	case st.Source == credential.SourceNone:
		return CompStatus{Status: "missing"}
	default:
		return CompStatus{Status: "ok", Source: string(st.Source)}
	}
}
