// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the API server.
package handler

import (
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/handler/http"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg.Server.
func NewHandlers(
	services *service.Services,
	cfg config.StructuredConfig,
	collector metrics.MetricsCollector,
	gatherer prometheus.Gatherer,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, collector, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// Close releases resources held by the handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
}
