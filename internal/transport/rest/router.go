package rest

import (
	"net/http"

	"github.com/heartmarshall/polyglot-backend/internal/transport/middleware"
)

// Routes collects the handlers and middleware the API is assembled from.
// Realtime is mounted at /api/realtime when set.
type Routes struct {
	Health     *HealthHandler
	Translate  *TranslateHandler
	Vocabulary *VocabularyHandler
	Credential *CredentialHandler
	Speech     *SpeechHandler
	Realtime   http.Handler

	// Protect wraps every /api route. Health probes stay open.
	Protect middleware.Middleware
	// Throttle wraps the routes that spend model quota.
	Throttle middleware.Middleware
}

// NewRouter builds the API mux.
func NewRouter(rt Routes) *http.ServeMux {
	protect := middleware.Chain(rt.Protect)
	metered := middleware.Chain(rt.Protect, rt.Throttle)
	api := func(h http.HandlerFunc) http.Handler { return protect(h) }
	quota := func(h http.HandlerFunc) http.Handler { return metered(h) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.Handle("POST /api/translate", quota(rt.Translate.Translate))

	mux.Handle("GET /api/vocabulary", api(rt.Vocabulary.List))
	mux.Handle("GET /api/vocabulary/saved", api(rt.Vocabulary.Saved))
	mux.Handle("POST /api/vocabulary/toggle", api(rt.Vocabulary.Toggle))
	mux.Handle("POST /api/vocabulary/delete", api(rt.Vocabulary.DeleteMany))
	mux.Handle("DELETE /api/vocabulary/{id}", api(rt.Vocabulary.Delete))

	mux.Handle("GET /api/credential", api(rt.Credential.Status))
	mux.Handle("PUT /api/credential", api(rt.Credential.Set))
	mux.Handle("DELETE /api/credential", api(rt.Credential.Clear))

	mux.Handle("POST /api/speak", api(rt.Speech.Speak))

	if rt.Realtime != nil {
		mux.Handle("GET /api/realtime", metered(rt.Realtime))
	}

	return mux
}
