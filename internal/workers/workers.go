// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the background workers of the API server. Without a
// configured database there are none. Otherwise the token sweeper runs once
// the database connector has reached the database.
func NewWorkers(services *service.Services, database Database, cfg config.Workers, collector metrics.MetricsCollector, logger *logger.Logger) *Workers {
	w := &Workers{}

	if database != nil {
		sweeper := NewTokenSweeper(services.TokenService, collector, cfg.TokenSweepInterval, logger)
		w.workers = append(w.workers, NewDatabaseConnector(database, cfg.DatabaseRetryInterval, logger, sweeper))
	}

	return w
}

// Start starts every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse registration order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
