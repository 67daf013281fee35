package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/polyglot-backend/internal/config"
	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/realtime"
	"github.com/heartmarshall/polyglot-backend/internal/transport/middleware"
	"github.com/heartmarshall/polyglot-backend/internal/transport/rest"
	"github.com/heartmarshall/polyglot-backend/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and serves the API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return Serve(ctx, cfg, NewLogger(cfg.Log))
}

// Serve builds the services and runs the HTTP server until ctx is cancelled,
// then shuts down gracefully within Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("database", cfg.Database.Enabled()),
		slog.Bool("auth", cfg.Auth.Enabled()),
		slog.Bool("speech", cfg.Speech.Enabled),
	)

	deps, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	sessions := realtime.NewRegistry(logger, deps.Translate, cfg.Realtime.Debounce, cfg.Realtime.MaxSessions)
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(deps, sessions, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(gctx, "server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		sessions.CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorContext(shutdownCtx, "graceful shutdown failed", slog.String("error", err.Error()))
			return err
		}
		logger.InfoContext(shutdownCtx, "server stopped")
		return nil
	})

	return g.Wait()
}

// NewHandler assembles the middleware chain and the routes.
func NewHandler(deps *Deps, sessions *realtime.Registry, limiter *middleware.RateLimiter) http.Handler {
	cfg := deps.Config
	log := deps.Log

	routes := rest.Routes{
		Health:     rest.NewHealthHandler(pinger(deps), deps.Resolver, BuildVersion()),
		Translate:  rest.NewTranslateHandler(deps.Translate, deps.Vocabulary, log),
		Vocabulary: rest.NewVocabularyHandler(deps.Vocabulary, log),
		Credential: rest.NewCredentialHandler(deps.Credentials, deps.Resolver, log),
		Speech:     rest.NewSpeechHandler(speaker(deps), log),
		Realtime:   ws.NewHandler(sessions, cfg.CORS.AllowedOrigins, log),
		Throttle:   limiter.Limit(cfg.RateLimit.Translate, cfg.RateLimit.Window),
	}
	var authn middleware.Middleware
	if deps.Tokens != nil {
		authn = middleware.Auth(deps.Tokens)
		routes.Protect = middleware.RequireClient
	}

	return middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		authn,
		middleware.Logger(log),
	)(rest.NewRouter(routes))
}

// pinger and speaker return an untyped nil for a missing dependency so the
// handlers see a nil interface.
func pinger(d *Deps) interface{ Ping(context.Context) error } {
	if d.Pool == nil {
		return nil
	}
	return d.Pool
}

func speaker(d *Deps) interface {
	Speak(context.Context, string, domain.Language)
} {
	if d.Speaker == nil {
		return nil
	}
	return d.Speaker
}
