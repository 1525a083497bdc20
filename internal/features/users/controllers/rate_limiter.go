package users_controllers

import (
	"sync"

	"golang.org/x/time/rate"
)

// ipRateLimiter hands out one token bucket per client address so a
// single noisy client cannot exhaust the auth endpoints for everyone.
type ipRateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *ipRateLimiter) Allow(clientIP string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[clientIP] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
