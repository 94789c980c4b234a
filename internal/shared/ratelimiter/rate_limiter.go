// Package ratelimiter implements in-memory sliding-window admission control
// keyed by client identity and endpoint.
package ratelimiter

import (
	"sync"
	"time"
)

const (
	// cleanupInterval is how often the coarse sweep runs.
	cleanupInterval = 5 * time.Minute
	// retentionHorizon is the age beyond which timestamps are dropped by
	// the sweep regardless of any window.
	retentionHorizon = time.Hour
)

// Limiter tracks request timestamps per key and answers whether another
// request fits inside a sliding window. It is safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	lastCleanup time.Time

	// now is injectable so tests can control the clock.
	now func() time.Time
}

// New creates a Limiter using the wall clock.
func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Limiter with a custom clock.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		requests:    make(map[string][]time.Time),
		lastCleanup: now(),
		now:         now,
	}
}

// Allow reports whether a request for key fits inside the window and how
// much quota remains. Timestamps outside the window are compacted away on
// every call. A denied request is not recorded; only allowed requests
// consume quota entries.
func (l *Limiter) Allow(key string, maxRequests int, window time.Duration) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.lastCleanup) > cleanupInterval {
		l.cleanup(now)
		l.lastCleanup = now
	}

	windowStart := now.Add(-window)
	recent := l.requests[key][:0]
	for _, ts := range l.requests[key] {
		if ts.After(windowStart) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= maxRequests {
		l.requests[key] = recent
		return false, 0
	}

	remaining := maxRequests - len(recent)
	l.requests[key] = append(recent, now)
	return true, remaining
}

// cleanup drops timestamps older than the retention horizon across all keys
// and evicts keys left empty, bounding memory independent of traffic skew.
// Caller must hold the mutex.
func (l *Limiter) cleanup(now time.Time) {
	cutoff := now.Add(-retentionHorizon)
	for key, timestamps := range l.requests {
		kept := timestamps[:0]
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(l.requests, key)
			continue
		}
		l.requests[key] = kept
	}
}
