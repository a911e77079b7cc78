package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-client sliding-window rate limiter. Each client's
// request timestamps are kept in memory and pruned lazily to the
// trailing window on that client's next request. State is not
// persisted; a restart resets every window.
type Limiter struct {
	window time.Duration
	max    int

	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(window time.Duration, max int, now func() time.Time) *Limiter {
	l := New(window, max)
	l.now = now
	return l
}

// Allow reports whether clientID may make a request now, recording the
// request when it does. The read-filter-append-store sequence runs
// under one mutex so concurrent requests from the same client cannot
// slip past the limit.
func (l *Limiter) Allow(clientID string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.hits[clientID][:0]
	for _, ts := range l.hits[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.hits[clientID] = recent
		return false
	}

	l.hits[clientID] = append(recent, now)
	return true
}

// Len returns the number of in-window requests currently recorded for
// clientID.
func (l *Limiter) Len(clientID string) int {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, ts := range l.hits[clientID] {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
