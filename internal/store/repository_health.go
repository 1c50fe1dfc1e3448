// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/logger"
)

type healthRepository struct {
	db *DB
}

// NewHealthRepository constructs a [HealthRepository].
func NewHealthRepository(db *DB) HealthRepository {
	return &healthRepository{db: db}
}

func (h *healthRepository) Ping(ctx context.Context) (time.Duration, error) {
	if err := h.db.EnsureReady(ctx); err != nil {
		return 0, err
	}

	ctx, cancel := h.db.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	var one int
	if err := h.db.QueryRowContext(ctx, healthCheckQuery).Scan(&one); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "healthRepository.Ping").Msg("database health check failed")
		return 0, h.db.wrapError(ErrExecutingQuery, err)
	}

	return time.Since(start), nil
}
