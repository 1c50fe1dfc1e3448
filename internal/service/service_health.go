// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/adapter"
	"github.com/MKhiriev/go-mathkids/internal/store"
)

type healthService struct {
	healthRepository store.HealthRepository
	mailer           adapter.Mailer
	configured       bool
}

func NewHealthService(healthRepository store.HealthRepository, mailer adapter.Mailer, configured bool) HealthService {
	return &healthService{healthRepository: healthRepository, mailer: mailer, configured: configured}
}

func (s *healthService) CheckDatabase(ctx context.Context) (time.Duration, error) {
	elapsed, err := s.healthRepository.Ping(ctx)
	if err != nil {
		return 0, fmt.Errorf("database health check failed: %w", err)
	}
	return elapsed, nil
}

func (s *healthService) DatabaseConfigured() bool {
	return s.configured
}

// CheckEmail reports the mail provider name and whether it is healthy.
func (s *healthService) CheckEmail(ctx context.Context) (string, error) {
	if err := s.mailer.Healthy(ctx); err != nil {
		return s.mailer.Provider(), fmt.Errorf("email health check failed: %w", err)
	}
	return s.mailer.Provider(), nil
}
