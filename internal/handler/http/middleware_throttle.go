// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"golang.org/x/time/rate"
)

// maxThrottledClients bounds the number of tracked clients; past it the
// table is dropped and rebuilt from scratch.
const maxThrottledClients = 10000

// clientThrottle is a token bucket per client IP allowing requests requests
// per window with bursts of the same size.
type clientThrottle struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientThrottle(requests int, window time.Duration) *clientThrottle {
	if requests <= 0 || window <= 0 {
		return &clientThrottle{limiters: make(map[string]*rate.Limiter), limit: rate.Inf}
	}

	return &clientThrottle{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
	}
}

func (t *clientThrottle) allow(client string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	limiter, ok := t.limiters[client]
	if !ok {
		if len(t.limiters) >= maxThrottledClients {
			clear(t.limiters)
		}
		limiter = rate.NewLimiter(t.limit, t.burst)
		t.limiters[client] = limiter
	}

	return limiter.Allow()
}

// withThrottle refuses requests from clients that exceeded their request
// budget with 429 RATE_LIMIT_EXCEEDED.
func (h *Handler) withThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := utils.ClientIP(r)
		if !h.throttle.allow(client) {
			logger.FromRequest(r).Warn().Str("client", client).Str("path", r.URL.Path).Msg("request throttled")
			h.metrics.RecordThrottled()
			h.writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
