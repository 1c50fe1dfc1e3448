// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter("test", 0)
	defer rl.Stop()

	assert.False(t, rl.enabled())

	h, _ := newTestHandler(t)
	called := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called++ })

	limited := h.withRateLimit(rl)(next)
	for i := 0; i < 10; i++ {
		limited.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/login", nil))
	}

	assert.Equal(t, 10, called)
}

func TestRateLimiter_PerClientIP(t *testing.T) {
	rl := newRateLimiter("test", 2)
	defer rl.Stop()

	h, _ := newTestHandler(t)
	limited := h.withRateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.1:1000"))
	assert.Equal(t, http.StatusOK, send("192.0.2.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1002"))

	// another client has its own bucket
	assert.Equal(t, http.StatusOK, send("192.0.2.2:1000"))
	assert.Equal(t, 2, rl.count())
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	tests := []struct {
		perMinute int
		want      int
	}{
		{perMinute: 1, want: 60},
		{perMinute: 20, want: 3},
		{perMinute: 7, want: 9},
		{perMinute: 120, want: 1},
	}

	for _, tt := range tests {
		rl := newRateLimiter("test", tt.perMinute)
		assert.Equal(t, tt.want, rl.retryAfter(), "perMinute=%d", tt.perMinute)
		rl.Stop()
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := newRateLimiter("test", 5)
	defer rl.Stop()

	rl.allow("198.51.100.1")
	rl.allow("198.51.100.2")
	rl.limiters["198.51.100.1"].lastAccess = time.Now().Add(-time.Hour)

	rl.cleanup(time.Now(), 10*time.Minute)

	assert.Equal(t, 1, rl.count())
	_, kept := rl.limiters["198.51.100.2"]
	assert.True(t, kept)
}
