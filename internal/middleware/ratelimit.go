package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	limiterCapacity = 1000
	limiterTTL      = 5 * time.Minute
)

// IPLimiter is a per-key token bucket limiter. Idle keys expire from an LRU
// so memory stays bounded.
type IPLimiter struct {
	mu       sync.Mutex // serializes lookup and insert of a key's bucket
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewIPLimiter allows requestsPerMin per key with a burst of a tenth of
// that, at least one. A non-positive rate disables limiting.
func NewIPLimiter(requestsPerMin int) *IPLimiter {
	if requestsPerMin <= 0 {
		return &IPLimiter{}
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &IPLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCapacity, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow reports whether one more request from key fits the budget.
func (rl *IPLimiter) Allow(key string) bool {
	if rl == nil || rl.limiters == nil {
		return true
	}
	return rl.bucket(key).Allow()
}

func (rl *IPLimiter) bucket(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
