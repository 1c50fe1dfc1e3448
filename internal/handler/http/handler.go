// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	app    config.App
	server config.Server

	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer

	loginLimiter *rateLimiter
	resetLimiter *rateLimiter
	tokenLimiter *rateLimiter

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. A nil collector disables metric
// recording and a nil gatherer disables GET /metrics.
func NewHandler(
	services *service.Services,
	cfg config.StructuredConfig,
	collector metrics.MetricsCollector,
	gatherer prometheus.Gatherer,
	logger *logger.Logger,
) *Handler {
	if collector == nil {
		collector = metrics.Nop{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		app:          cfg.App,
		server:       cfg.Server,
		metrics:      collector,
		gatherer:     gatherer,
		loginLimiter: newRateLimiter("login", cfg.Server.LoginRatePerMinute),
		resetLimiter: newRateLimiter("forgot-password", cfg.Server.LoginRatePerMinute),
		tokenLimiter: newRateLimiter("remember-token", cfg.Server.TokenRatePerMinute),
		logger:       logger,
	}
}

// Close stops the background goroutines of the rate limiters.
func (h *Handler) Close() {
	h.loginLimiter.Stop()
	h.resetLimiter.Stop()
	h.tokenLimiter.Stop()
}
