package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimitWithinWindow(t *testing.T) {
	limiter := NewRateLimiter(10)
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		require.True(t, limiter.TryAcquire(start.Add(time.Duration(i)*5*time.Second)), "request %d should pass", i+1)
	}

	assert.False(t, limiter.TryAcquire(start.Add(59*time.Second)))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter(2)
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	require.True(t, limiter.TryAcquire(start))
	require.True(t, limiter.TryAcquire(start.Add(time.Second)))
	require.False(t, limiter.TryAcquire(start.Add(2*time.Second)))

	// A full minute after the window start the counter resets
	assert.True(t, limiter.TryAcquire(start.Add(time.Minute)))
}

func TestRateLimiterRejectedRequestsDoNotConsume(t *testing.T) {
	limiter := NewRateLimiter(1)
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	require.True(t, limiter.TryAcquire(start))
	for i := 0; i < 5; i++ {
		require.False(t, limiter.TryAcquire(start.Add(time.Duration(i)*time.Second)))
	}

	assert.True(t, limiter.TryAcquire(start.Add(time.Minute)))
}
