package services

import (
	"sync"
	"time"
)

const rateWindow = time.Minute

// RateLimiter counts requests in a rolling one-minute window. The count resets
// whenever a full window has elapsed since the window start.
type RateLimiter struct {
	mu          sync.Mutex
	windowStart time.Time
	count       int
	limit       int
}

// NewRateLimiter creates a limiter with the given per-minute ceiling
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{limit: limit}
}

// TryAcquire reports whether a request at the given time is allowed and, if
// so, counts it against the active window.
func (r *RateLimiter) TryAcquire(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.windowStart.IsZero() || now.Sub(r.windowStart) >= rateWindow {
		r.windowStart = now
		r.count = 0
	}

	if r.count >= r.limit {
		return false
	}

	r.count++
	return true
}
