package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTooManySessions is returned by Open when every slot is taken.
var ErrTooManySessions = errors.New("too many realtime sessions")

// Registry bounds the number of open sessions and closes them on shutdown.
type Registry struct {
	tr       translator
	debounce time.Duration
	log      *slog.Logger
	slots    *semaphore.Weighted

	mu       sync.Mutex
	sessions map[*Session]struct{}
}

// NewRegistry creates a registry allowing at most maxSessions open sessions.
func NewRegistry(log *slog.Logger, tr translator, debounce time.Duration, maxSessions int) *Registry {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &Registry{
		tr:       tr,
		debounce: debounce,
		log:      log,
		slots:    semaphore.NewWeighted(int64(maxSessions)),
		sessions: make(map[*Session]struct{}),
	}
}

// Open starts a session. The returned release func closes the session and
// frees its slot; it is safe to call more than once.
func (r *Registry) Open(ctx context.Context, deliver func(Update)) (*Session, func(), error) {
	if !r.slots.TryAcquire(1) {
		return nil, nil, ErrTooManySessions
	}

	s := NewSession(ctx, r.log, r.tr, r.debounce, deliver)
	r.mu.Lock()
	r.sessions[s] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.Close()
			r.mu.Lock()
			delete(r.sessions, s)
			r.mu.Unlock()
			r.slots.Release(1)
		})
	}
	return s, release, nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// CloseAll closes every open session. Slots are freed by the owners'
// release funcs.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	open := make([]*Session, 0, len(r.sessions))
	for s := range r.sessions {
		open = append(open, s)
	}
	r.mu.Unlock()

	for _, s := range open {
		s.Close()
	}
}
