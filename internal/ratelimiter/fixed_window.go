package ratelimiter

import (
	"sync"
	"time"
)

// FixedWindowRateLimiter counts requests per key inside windows that start
// with the first request from that key. Expired windows are swept at most
// once per window length.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients   map[string]*window
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(limit int, timeFrame time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  timeFrame,
		now:     time.Now,
	}
}

func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, exists := rl.clients[key]
	if !exists || !now.Before(w.resetAt) {
		if now.Sub(rl.lastSweep) >= rl.window {
			rl.evictExpired(now)
			rl.lastSweep = now
		}
		rl.clients[key] = &window{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}

	return false, w.resetAt.Sub(now)
}

func (rl *FixedWindowRateLimiter) evictExpired(now time.Time) {
	for key, w := range rl.clients {
		if !now.Before(w.resetAt) {
			delete(rl.clients, key)
		}
	}
}
