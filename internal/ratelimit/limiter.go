// Package ratelimit bounds inbound request rates per client. The limiter is
// an injected collaborator so handlers and tests can swap it out.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
)

// Limiter decides whether a request from the given key may proceed
//
//go:generate mockgen -destination=../mocks/ratelimit.go -package=mocks github.com/orbitwatch/debris-tracker/internal/ratelimit Limiter
type Limiter interface {
	// Allow reports whether one event for key may happen now
	Allow(key string) bool
}

// staleAfter is the idle time after which a per-key limiter is dropped
const staleAfter = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucket is a per-key token bucket limiter. Each key gets its own
// bucket with the shared rate and burst; idle buckets are evicted on the
// next sweep so the map does not grow unbounded.
type TokenBucket struct {
	mu        sync.Mutex
	buckets   map[string]*keyedLimiter
	rps       rate.Limit
	burst     int
	clock     adapter.Clock
	lastSweep time.Time
}

// NewTokenBucket creates a per-key token bucket limiter
func NewTokenBucket(requestsPerSecond float64, burst int, clock adapter.Clock) *TokenBucket {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucket{
		buckets:   make(map[string]*keyedLimiter),
		rps:       rate.Limit(requestsPerSecond),
		burst:     burst,
		clock:     clock,
		lastSweep: clock.Now(),
	}
}

// Allow reports whether one event for key may happen now
func (t *TokenBucket) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if now.Sub(t.lastSweep) > staleAfter {
		t.sweepLocked(now)
	}

	b, ok := t.buckets[key]
	if !ok {
		b = &keyedLimiter{limiter: rate.NewLimiter(t.rps, t.burst)}
		t.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.Allow()
}

// sweepLocked drops buckets idle longer than staleAfter; caller holds mu
func (t *TokenBucket) sweepLocked(now time.Time) {
	for key, b := range t.buckets {
		if now.Sub(b.lastSeen) > staleAfter {
			delete(t.buckets, key)
		}
	}
	t.lastSweep = now
}

// Unlimited permits everything; used when rate limiting is disabled
type Unlimited struct{}

// NewUnlimited creates a limiter that never throttles
func NewUnlimited() Limiter {
	return &Unlimited{}
}

func (Unlimited) Allow(string) bool { return true }
