// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/health/database", h.healthDatabase)
	router.Get("/health/email", h.healthEmail)
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Get("/version", h.getServerVersion)

		r.Post("/register", h.register)
		r.With(h.withRateLimit(h.loginLimiter)).Post("/login", h.login)
		r.With(h.withRateLimit(h.tokenLimiter)).Get("/verify-token", h.verifyToken)
		r.With(h.withRateLimit(h.tokenLimiter)).Post("/logout", h.logout)
		r.With(h.withRateLimit(h.resetLimiter)).Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)

		// routes with bearer session token
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
