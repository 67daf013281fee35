package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/polyglot-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Auth resolves the bearer token into a client id. Requests without a token
// pass through anonymously; an invalid token is rejected.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			clientID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized", "invalid token")
				return
			}
			ctx := ctxutil.WithClientID(r.Context(), clientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireClient rejects requests that Auth left anonymous.
func RequireClient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ClientIDFromCtx(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", `Bearer realm="polyglot"`)
			writeError(w, http.StatusUnauthorized, "unauthorized", "bearer token required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractBearerToken accepts the scheme in any letter case. Browsers cannot
// set headers on a websocket handshake, so upgrades may pass access_token in
// the query instead.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return r.URL.Query().Get("access_token")
	}
	return ""
}
