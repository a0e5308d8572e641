// Package ratelimit bounds vote submission frequency per identity using a
// fixed window. State is process-local and ephemeral: a restart resets all
// limits, and instances do not share state.
package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// window holds one identity's usage inside the current fixed window.
type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window rate limiter keyed by identity. It is
// constructed once per process and injected into request handlers.
type Limiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	duration  time.Duration
	max       int
	clock     func() time.Time
	lastPrune time.Time
	logger    *zap.Logger
}

// New creates a limiter allowing max actions per identity within each
// window of the given duration.
func New(duration time.Duration, max int, logger *zap.Logger) *Limiter {
	return NewWithClock(duration, max, logger, time.Now)
}

// NewWithClock creates a limiter with an injected clock. Tests use this to
// step across window boundaries deterministically.
func NewWithClock(duration time.Duration, max int, logger *zap.Logger, clock func() time.Time) *Limiter {
	return &Limiter{
		windows:   make(map[string]*window),
		duration:  duration,
		max:       max,
		clock:     clock,
		lastPrune: clock(),
		logger:    logger.Named("ratelimit"),
	}
}

// Allow records an action for the identity and reports whether it is
// within the window's budget. The first call after a window expires resets
// the count.
func (l *Limiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()

	// Sweep expired windows at most once per window duration so abandoned
	// identities do not accumulate for the life of the process.
	if now.Sub(l.lastPrune) >= l.duration {
		l.pruneLocked(now)
		l.lastPrune = now
	}

	w, ok := l.windows[identity]
	if !ok || now.After(w.resetAt) {
		l.windows[identity] = &window{count: 1, resetAt: now.Add(l.duration)}
		return true
	}

	if w.count < l.max {
		w.count++
		return true
	}

	l.logger.Debug("Rate limit exceeded",
		zap.String("identity", identity),
		zap.Time("resetAt", w.resetAt))

	return false
}

// Status returns the remaining budget and window reset time for an
// identity. A missing or expired window reports the full budget.
func (l *Limiter) Status(identity string) (remaining int, resetAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()

	w, ok := l.windows[identity]
	if !ok || now.After(w.resetAt) {
		return l.max, now.Add(l.duration)
	}

	remaining = l.max - w.count
	if remaining < 0 {
		remaining = 0
	}

	return remaining, w.resetAt
}

// pruneLocked drops expired windows. Correctness does not depend on it;
// Allow handles stale windows per identity either way. Callers hold mu.
func (l *Limiter) pruneLocked(now time.Time) {
	for identity, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, identity)
		}
	}
}

// Size reports the number of identities currently tracked, expired
// windows included until the next sweep.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.windows)
}
