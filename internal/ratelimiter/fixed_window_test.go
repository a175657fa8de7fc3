package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter(t *testing.T) {
	clock := time.Date(2025, 10, 31, 10, 0, 0, 0, time.UTC)
	rl := NewFixedWindowLimiter(3, 5*time.Second)
	rl.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i+1)
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 5*time.Second, retryAfter)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "other clients have their own window")

	clock = clock.Add(2 * time.Second)
	_, retryAfter = rl.Allow("10.0.0.1")
	assert.Equal(t, 3*time.Second, retryAfter)

	clock = clock.Add(3 * time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok, "window resets")
}

func TestFixedWindowLimiter_SweepsOncePerWindow(t *testing.T) {
	start := time.Date(2025, 10, 31, 10, 0, 0, 0, time.UTC)
	clock := start
	rl := NewFixedWindowLimiter(1, 5*time.Second)
	rl.now = func() time.Time { return clock }

	at := func(offset time.Duration, key string) {
		clock = start.Add(offset)
		ok, _ := rl.Allow(key)
		assert.True(t, ok, key)
	}

	at(0, "a")
	at(3*time.Second, "b")

	at(5*time.Second, "c")
	assert.NotContains(t, rl.clients, "a")
	assert.Len(t, rl.clients, 2)

	at(8*time.Second, "d")
	assert.Contains(t, rl.clients, "b", "no sweep before a full window has passed")
	assert.Len(t, rl.clients, 3)

	at(10*time.Second, "e")
	assert.Len(t, rl.clients, 2)
	assert.Contains(t, rl.clients, "d")
	assert.Contains(t, rl.clients, "e")
}
