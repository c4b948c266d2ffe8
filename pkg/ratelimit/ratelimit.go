// Package ratelimit provides a sliding-window gate for outbound provider calls.
//
// Unlike a token bucket, the window bound is strict: no more than limit calls
// start within any trailing window, which is what LLM providers meter against.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter bounds how many calls may start within a trailing time window.
// It is safe for concurrent use; the mutex is held while a caller waits, so
// callers are served in arrival order. State is process-local only.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	calls  []time.Time
}

// NewLimiter creates a limiter allowing callsPerMinute calls in any
// trailing 60-second window.
func NewLimiter(callsPerMinute int) *Limiter {
	return NewLimiterWithWindow(callsPerMinute, time.Minute)
}

// NewLimiterWithWindow creates a limiter with a custom window. Used by tests
// to keep timing assertions fast.
func NewLimiterWithWindow(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		limit:  limit,
		window: window,
		calls:  make([]time.Time, 0, limit),
	}
}

// Acquire blocks until fewer than limit calls have been recorded in the
// trailing window, then records a new call. It returns early with the
// context error if ctx is cancelled while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for {
		now := time.Now()
		l.prune(now)

		if len(l.calls) < l.limit {
			l.calls = append(l.calls, now)
			return nil
		}

		// Oldest recorded call leaves the window first.
		wait := l.calls[0].Add(l.window).Sub(now)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Recorded returns the number of calls currently inside the window.
func (l *Limiter) Recorded() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(time.Now())
	return len(l.calls)
}

// prune drops calls that have left the window. Caller must hold the mutex.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.calls) && !l.calls[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.calls = append(l.calls[:0], l.calls[i:]...)
	}
}
