// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"
)

// DefaultRateLimitWindow is the fixed window length used for login and
// registration throttling.
const DefaultRateLimitWindow = 15 * time.Minute

type rateLimitCounter struct {
	count     int
	resetTime time.Time
}

// MemRateLimiter is a fixed-window [RateLimiter] kept in process memory.
// Expired counters are removed on read and by [MemRateLimiter.Sweep].
type MemRateLimiter struct {
	mu       sync.Mutex
	counters map[string]*rateLimitCounter
	window   time.Duration
	now      func() time.Time
}

// NewMemRateLimiter returns a limiter with the given window. A non-positive
// window falls back to [DefaultRateLimitWindow]. now may be nil to use the
// wall clock.
func NewMemRateLimiter(window time.Duration, now func() time.Time) *MemRateLimiter {
	if window <= 0 {
		window = DefaultRateLimitWindow
	}
	if now == nil {
		now = time.Now
	}

	return &MemRateLimiter{
		counters: make(map[string]*rateLimitCounter),
		window:   window,
		now:      now,
	}
}

func (l *MemRateLimiter) GetCount(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counter := l.live(key)
	if counter == nil {
		return 0
	}

	return counter.count
}

func (l *MemRateLimiter) Increment(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	counter := l.live(key)
	if counter == nil {
		counter = &rateLimitCounter{resetTime: l.now().Add(l.window)}
		l.counters[key] = counter
	}
	counter.count++

	return counter.count
}

func (l *MemRateLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.counters, key)
}

// live returns the unexpired counter for key, deleting an expired one.
// l.mu must be held.
func (l *MemRateLimiter) live(key string) *rateLimitCounter {
	counter, ok := l.counters[key]
	if !ok {
		return nil
	}

	if counter.resetTime.Before(l.now()) {
		delete(l.counters, key)
		return nil
	}

	return counter
}

// Sweep drops every expired counter and reports how many were removed.
func (l *MemRateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, counter := range l.counters {
		if counter.resetTime.Before(now) {
			delete(l.counters, key)
			removed++
		}
	}

	return removed
}
