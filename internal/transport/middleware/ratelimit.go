package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/polyglot-backend/pkg/ctxutil"
)

// idleBucketTTL is how long an untouched bucket survives a sweep.
const idleBucketTTL = 10 * time.Minute

// RateLimiter hands out token buckets per caller. Authenticated callers are
// keyed by client id, anonymous ones by remote host. Translation spends
// upstream quota, so the translate routes sit behind it.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	stop chan struct{}
	once sync.Once
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	seen     time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every sweepEvery.
// Stop releases the sweeper.
func NewRateLimiter(sweepEvery time.Duration) *RateLimiter {
	rl := newRateLimiter(time.Now)
	go rl.sweepLoop(sweepEvery)
	return rl
}

func newRateLimiter(now func() time.Time) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows max requests per window per caller and answers 429 with a
// Retry-After hint once the bucket is empty.
func (rl *RateLimiter) Limit(max int, window time.Duration) Middleware {
	perSec := float64(max) / window.Seconds()
	retryAfter := strconv.Itoa(int(math.Ceil(window.Seconds() / float64(max))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(callerKey(r), float64(max), perSec) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if clientID, ok := ctxutil.ClientIDFromCtx(r.Context()); ok {
		return "client:" + clientID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// take refills the caller's bucket for the time since it was last seen and
// spends one token if there is one.
func (rl *RateLimiter) take(key string, capacity, perSec float64) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, perSec: perSec, seen: now}
		rl.buckets[key] = b
	}

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.seen).Seconds()*b.perSec)
	b.seen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle for longer than idleBucketTTL and reports how
// many remain.
func (rl *RateLimiter) sweep() int {
	cutoff := rl.now().Add(-idleBucketTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.buckets {
		if b.seen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
	return len(rl.buckets)
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
