// Package ws serves realtime translation over a websocket. Each connection
// owns one realtime session.
package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/realtime"
)

const (
	readLimit    = 64 << 10
	writeTimeout = 5 * time.Second
)

type sessionOpener interface {
	Open(ctx context.Context, deliver func(realtime.Update)) (*realtime.Session, func(), error)
}

// Handler upgrades requests and runs the session protocol.
type Handler struct {
	sessions sessionOpener
	accept   *websocket.AcceptOptions
	log      *slog.Logger
}

// NewHandler creates a Handler. allowedOrigins is the comma-separated CORS
// origin list; "*" accepts any origin.
func NewHandler(sessions sessionOpener, allowedOrigins string, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		accept:   acceptOptions(allowedOrigins),
		log:      logger.With("handler", "realtime"),
	}
}

func acceptOptions(allowed string) *websocket.AcceptOptions {
	opts := &websocket.AcceptOptions{}
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			opts.InsecureSkipVerify = true
		default:
			if u, err := url.Parse(o); err == nil && u.Host != "" {
				o = u.Host
			}
			opts.OriginPatterns = append(opts.OriginPatterns, o)
		}
	}
	return opts
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, h.accept)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	ctx := r.Context()
	session, release, err := h.sessions.Open(ctx, func(u realtime.Update) {
		h.write(ctx, conn, fromUpdate(u))
	})
	if errors.Is(err, realtime.ErrTooManySessions) {
		conn.Close(websocket.StatusTryAgainLater, "too many realtime sessions")
		return
	}
	if err != nil {
		h.log.ErrorContext(ctx, "open realtime session", slog.String("error", err.Error()))
		conn.Close(websocket.StatusInternalError, "")
		return
	}
	defer release()

	h.log.InfoContext(ctx, "realtime session opened")
	h.write(ctx, conn, settingsMessage(session.Settings()))

	for {
		var msg clientMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				h.log.InfoContext(ctx, "realtime session closed")
			default:
				if ctx.Err() == nil {
					h.log.WarnContext(ctx, "realtime read failed", slog.String("error", err.Error()))
				}
			}
			return
		}
		h.dispatch(ctx, conn, session, msg)
	}
}

func (h *Handler) dispatch(ctx context.Context, conn *websocket.Conn, s *realtime.Session, msg clientMessage) {
	switch msg.Type {
	case typeInput:
		s.Input(msg.Text)
	case typeClear:
		s.Clear()
	case typeSwap:
		s.Swap()
		h.write(ctx, conn, settingsMessage(s.Settings()))
	case typeConfigure:
		err := s.Configure(realtime.Settings{
			Source:     domain.Language(msg.Source),
			Target:     domain.Language(msg.Target),
			Tone:       domain.Tone(msg.Tone),
			Credential: msg.Credential,
		})
		if err != nil {
			h.write(ctx, conn, errorMessage(0, err))
			return
		}
		h.write(ctx, conn, settingsMessage(s.Settings()))
	default:
		h.write(ctx, conn, errorMessage(0, domain.NewValidationError("type", "unknown message type")))
	}
}

func (h *Handler) write(ctx context.Context, conn *websocket.Conn, msg serverMessage) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, msg); err != nil && !errors.Is(err, context.Canceled) {
		h.log.DebugContext(ctx, "realtime write failed", slog.String("error", err.Error()))
	}
}
