// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"
)

var (
	corsAllowedMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsAllowedHeaders = strings.Join([]string{
		"Content-Type",
		"Authorization",
		"X-Requested-With",
		"Accept",
		"Origin",
		rememberTokenHeader,
		traceIDHeader,
	}, ", ")
)

// withCORS answers preflight requests and adds CORS headers for allowed
// origins. Credentials are allowed so the remember-me cookie travels with
// cross-origin requests, which is why the origin is echoed instead of "*".
// An empty allow-list accepts every origin.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := origin != "" && h.originAllowed(origin)

		if allowed {
			headers := w.Header()
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Credentials", "true")
			headers.Set("Access-Control-Expose-Headers", traceIDHeader)
			headers.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if allowed {
				w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", "600")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) originAllowed(origin string) bool {
	if len(h.server.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.server.AllowedOrigins, origin)
}
