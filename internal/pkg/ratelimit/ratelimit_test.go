package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllowWithinLimit(t *testing.T) {
	rl := New(3, time.Minute)

	require.True(t, rl.Allow("a"))
	require.True(t, rl.Allow("a"))
	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))

	// Other keys are independent.
	require.True(t, rl.Allow("b"))
}

func TestRemaining(t *testing.T) {
	rl := New(2, time.Minute)

	require.Equal(t, 2, rl.Remaining("a"))
	rl.Allow("a")
	require.Equal(t, 1, rl.Remaining("a"))
	rl.Allow("a")
	rl.Allow("a") // denied, does not consume
	require.Equal(t, 0, rl.Remaining("a"))
}

func TestWindowExpiry(t *testing.T) {
	rl := New(1, 30*time.Millisecond)

	require.True(t, rl.Allow("a"))
	require.False(t, rl.Allow("a"))

	time.Sleep(40 * time.Millisecond)
	require.True(t, rl.Allow("a"))
}
