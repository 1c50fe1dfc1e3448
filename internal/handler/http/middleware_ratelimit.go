// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"golang.org/x/time/rate"
)

const rateLimiterCleanupInterval = 5 * time.Minute

// clientLimiter is the token bucket of a single client IP.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter limits requests per client IP. A rateLimiter created with a
// non-positive rate lets every request through.
type rateLimiter struct {
	name      string
	perMinute int
	rate      rate.Limit
	burst     int

	mu       sync.RWMutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// newRateLimiter allows perMinute requests per client IP with a burst of
// the same size. It starts a cleanup goroutine that is stopped by Stop.
func newRateLimiter(name string, perMinute int) *rateLimiter {
	rl := &rateLimiter{
		name:      name,
		perMinute: perMinute,
		limiters:  make(map[string]*clientLimiter),
		stopCh:    make(chan struct{}),
	}
	if perMinute <= 0 {
		return rl
	}

	rl.rate = rate.Limit(float64(perMinute) / 60.0)
	rl.burst = perMinute

	go rl.cleanupLoop(rateLimiterCleanupInterval)

	return rl
}

func (rl *rateLimiter) enabled() bool {
	return rl.burst > 0
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *rateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

func (rl *rateLimiter) allow(key string) bool {
	return rl.getOrCreate(key).Allow()
}

func (rl *rateLimiter) count() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

func (rl *rateLimiter) getOrCreate(key string) *rate.Limiter {
	rl.mu.RLock()
	cl, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		cl.lastAccess = time.Now()
		rl.mu.Unlock()
		return cl.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// double check
	if cl, exists := rl.limiters[key]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (rl *rateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now(), interval*2)
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops buckets that were not touched for ttl.
func (rl *rateLimiter) cleanup(now time.Time, ttl time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// retryAfter is the number of seconds until one token is refilled.
func (rl *rateLimiter) retryAfter() int {
	return max(1, (60+rl.perMinute-1)/rl.perMinute)
}

// withRateLimit rejects requests of a client IP that exceeded rl with
// 429 Too Many Requests and a Retry-After header.
func (h *Handler) withRateLimit(rl *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !rl.enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := utils.ClientIP(r)
			if !rl.allow(clientIP) {
				logger.FromRequest(r).Warn().
					Str("func", "*Handler.withRateLimit").
					Str("ip", clientIP).
					Str("limit", rl.name).
					Msg("rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
				utils.WriteMessage(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
