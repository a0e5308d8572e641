package ratelimit_test

import (
	"testing"
	"time"

	"github.com/jergadic/jergadic/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testClock is an adjustable clock for stepping across window boundaries.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, window time.Duration, max int) (*ratelimit.Limiter, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)}
	limiter := ratelimit.NewWithClock(window, max, zap.NewNop(), clock.Now)

	return limiter, clock
}

func TestAllowWithinBudget(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, time.Minute, 10)

	for i := range 10 {
		assert.True(t, limiter.Allow("user-1"), "request %d should be allowed", i+1)
	}

	assert.False(t, limiter.Allow("user-1"), "11th request should be denied")
}

func TestWindowReset(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(t, time.Minute, 2)

	require.True(t, limiter.Allow("user-1"))
	require.True(t, limiter.Allow("user-1"))
	require.False(t, limiter.Allow("user-1"))

	// Just inside the window the budget stays exhausted.
	clock.Advance(59 * time.Second)
	assert.False(t, limiter.Allow("user-1"))

	// Past the window the count resets.
	clock.Advance(2 * time.Second)
	assert.True(t, limiter.Allow("user-1"))
}

func TestIdentitiesAreIndependent(t *testing.T) {
	t.Parallel()

	limiter, _ := newTestLimiter(t, time.Minute, 1)

	assert.True(t, limiter.Allow("user-1"))
	assert.False(t, limiter.Allow("user-1"))
	assert.True(t, limiter.Allow("user-2"))
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(t, time.Minute, 5)

	remaining, resetAt := limiter.Status("user-1")
	assert.Equal(t, 5, remaining)
	assert.Equal(t, clock.Now().Add(time.Minute), resetAt)

	require.True(t, limiter.Allow("user-1"))
	require.True(t, limiter.Allow("user-1"))

	remaining, resetAt = limiter.Status("user-1")
	assert.Equal(t, 3, remaining)
	assert.Equal(t, clock.Now().Add(time.Minute), resetAt)

	// After the window expires, Status reports a full fresh budget.
	clock.Advance(2 * time.Minute)

	remaining, _ = limiter.Status("user-1")
	assert.Equal(t, 5, remaining)
}

func TestExpiredWindowsAreSwept(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(t, time.Minute, 1)

	require.True(t, limiter.Allow("user-1"))
	require.True(t, limiter.Allow("user-2"))
	assert.Equal(t, 2, limiter.Size())

	clock.Advance(2 * time.Minute)

	// The next Allow sweeps every expired window, leaving only the caller.
	require.True(t, limiter.Allow("user-3"))
	assert.Equal(t, 1, limiter.Size())

	// A swept identity behaves like a brand new one.
	assert.True(t, limiter.Allow("user-1"))
}

func TestSweepIsRateLimitedToOncePerWindow(t *testing.T) {
	t.Parallel()

	limiter, clock := newTestLimiter(t, time.Minute, 1)

	require.True(t, limiter.Allow("user-1"))

	// Half a window later nothing has expired and no sweep runs.
	clock.Advance(30 * time.Second)
	require.True(t, limiter.Allow("user-2"))
	assert.Equal(t, 2, limiter.Size())

	// Past the window the sweep runs: user-1 is stale and dropped while
	// user-2's window still has 15 seconds to live.
	clock.Advance(45 * time.Second)
	require.True(t, limiter.Allow("user-3"))
	assert.Equal(t, 2, limiter.Size())

	// The surviving window keeps enforcing its budget.
	assert.False(t, limiter.Allow("user-2"))
}
