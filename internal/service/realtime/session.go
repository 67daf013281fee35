// Package realtime runs as-you-type translation. Input is debounced, every
// issued request gets a larger id than the one before, and only the answer
// to the latest issued request is delivered.
package realtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/polyglot-backend/internal/domain"
	"github.com/heartmarshall/polyglot-backend/internal/service/translate"
	"github.com/heartmarshall/polyglot-backend/internal/service/wordguide"
)

// DefaultDebounce is used when a session is created with a zero debounce.
const DefaultDebounce = 400 * time.Millisecond

type translator interface {
	Translate(ctx context.Context, in translate.TranslateInput) (*domain.TranslationResult, error)
}

// UpdateKind tells a client how to render an Update.
type UpdateKind string

const (
	UpdateResult  UpdateKind = "result"
	UpdateError   UpdateKind = "error"
	UpdateCleared UpdateKind = "cleared"
)

// Settings are the language and tone choices applied to the next request.
type Settings struct {
	Source     domain.Language
	Target     domain.Language
	Tone       domain.Tone
	Credential string
}

// Update is delivered for the latest request only.
type Update struct {
	Kind      UpdateKind
	RequestID uint64
	Text      string
	Source    domain.Language
	Target    domain.Language
	Result    *domain.TranslationResult
	// SourceGuide and TargetGuide partition Result.WordGuide by the side of
	// the translation each word belongs to.
	SourceGuide []domain.GlossaryItem
	TargetGuide []domain.GlossaryItem
	Err         error
}

// Session is one client's realtime translation state. Its methods are safe
// for concurrent use. The deliver callback is called serially and must not
// call back into the Session.
type Session struct {
	tr       translator
	debounce time.Duration
	deliver  func(Update)
	log      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	latest    atomic.Uint64
	last      atomic.Pointer[domain.TranslationResult]
	deliverMu sync.Mutex

	mu   sync.Mutex
	text string
	// displaced is the input a Swap replaced with the shown translation. A
	// second Swap before any new result puts it back.
	displaced string
	settings  Settings
	gen       uint64
	timer     *time.Timer
	inflight  context.CancelFunc
	closed    bool
	wg        sync.WaitGroup
}

// NewSession creates a session bound to ctx. Cancelling ctx or calling Close
// stops it.
func NewSession(
	ctx context.Context,
	log *slog.Logger,
	tr translator,
	debounce time.Duration,
	deliver func(Update),
) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Session{
		tr:       tr,
		debounce: debounce,
		deliver:  deliver,
		log:      log.With("service", "realtime"),
		ctx:      ctx,
		cancel:   cancel,
		settings: Settings{Source: domain.LanguageAuto, Target: domain.LanguageThai, Tone: domain.TonePolite},
	}
}

// Latest returns the id of the most recently issued request, 0 if none.
func (s *Session) Latest() uint64 { return s.latest.Load() }

// Settings returns the current settings.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Configure replaces the settings. Empty fields keep their current value.
// Pending input is re-scheduled so the next answer uses the new settings.
func (s *Session) Configure(in Settings) error {
	next := s.Settings()
	if in.Source != "" {
		next.Source = in.Source
	}
	if in.Target != "" {
		next.Target = in.Target
	}
	if in.Tone != "" {
		next.Tone = in.Tone
	}
	if in.Credential != "" {
		next.Credential = in.Credential
	}
	probe := translate.TranslateInput{Text: "-", Source: next.Source, Target: next.Target, Tone: next.Tone}
	if err := probe.Validate(1); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
	if strings.TrimSpace(s.text) != "" {
		s.scheduleLocked()
	}
	return nil
}

// Input records the current text. Blank text clears the session; anything
// else (re)starts the debounce window.
func (s *Session) Input(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.text = text
	s.displaced = ""
	if strings.TrimSpace(text) == "" {
		s.clearLocked()
		return
	}
	s.scheduleLocked()
}

// Clear drops the text and the last result, and suppresses any answer still
// in flight.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.text = ""
	s.clearLocked()
}

// Swap exchanges source and target. When a translation is showing, its
// output becomes the new input and the result is consumed. Swapping again
// before a new result arrives restores the previous input.
func (s *Session) Swap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.settings.Source, s.settings.Target = s.settings.Target, s.settings.Source
	if last := s.last.Swap(nil); last != nil && last.TranslatedText != "" {
		s.displaced, s.text = s.text, last.TranslatedText
	} else if s.displaced != "" {
		s.text, s.displaced = s.displaced, ""
	}
	if strings.TrimSpace(s.text) != "" {
		s.scheduleLocked()
	}
}

// Close stops the session and waits for in-flight work to finish.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *Session) scheduleLocked() {
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(gen) })
}

func (s *Session) clearLocked() {
	s.displaced = ""
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
	s.deliverMu.Lock()
	s.last.Store(nil)
	id := s.latest.Add(1)
	s.deliver(Update{Kind: UpdateCleared, RequestID: id})
	s.deliverMu.Unlock()
}

// fire issues a request if no newer event arrived since gen was scheduled.
func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	if s.inflight != nil {
		s.inflight()
	}
	reqCtx, cancel := context.WithCancel(s.ctx)
	s.inflight = cancel
	id := s.latest.Add(1)
	set := s.settings
	in := translate.TranslateInput{
		Text:       s.text,
		Source:     set.Source,
		Target:     set.Target,
		Tone:       set.Tone,
		Credential: set.Credential,
	}
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	defer cancel()
	s.run(reqCtx, id, in)
}

func (s *Session) run(ctx context.Context, id uint64, in translate.TranslateInput) {
	s.log.DebugContext(ctx, "realtime request issued", slog.Uint64("request_id", id))

	result, err := s.tr.Translate(ctx, in)

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if s.ctx.Err() != nil {
		return
	}
	if current := s.latest.Load(); current != id {
		s.log.DebugContext(ctx, "stale realtime response dropped",
			slog.Uint64("request_id", id),
			slog.Uint64("latest", current),
		)
		return
	}

	u := Update{
		RequestID: id,
		Text:      in.Text,
		Source:    in.Source,
		Target:    in.Target,
	}
	if err != nil {
		u.Kind = UpdateError
		u.Err = err
		s.deliver(u)
		return
	}

	pair := wordguide.Pair{Detected: result.DetectedSource, Target: result.EffectiveTarget(in.Target)}
	u.Kind = UpdateResult
	u.Result = result
	u.Target = pair.Target
	u.SourceGuide, u.TargetGuide = wordguide.Split(result.WordGuide, pair)

	s.last.Store(result)
	s.deliver(u)
}
