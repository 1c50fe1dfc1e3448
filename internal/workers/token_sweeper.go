// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
)

// defaultSweepInterval is used when no positive interval is configured.
const defaultSweepInterval = time.Hour

// tokenSweeper periodically deletes expired persistent and reset tokens.
type tokenSweeper struct {
	tokenService service.TokenService
	metrics      metrics.MetricsCollector
	interval     time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTokenSweeper creates a sweeper that calls tokenService.SweepExpired
// once on Start and then every interval. The sweeper is idle until Start
// is called.
func NewTokenSweeper(tokenService service.TokenService, collector metrics.MetricsCollector, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	if collector == nil {
		collector = metrics.Nop{}
	}

	return &tokenSweeper{
		tokenService: tokenService,
		metrics:      collector,
		interval:     interval,
		logger:       logger,
	}
}

// Start stops any previously running sweep loop, then launches a new one.
// The goroutine exits when ctx is cancelled or Stop is called.
func (s *tokenSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.interval).Msg("token sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		s.sweep(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop cancels the sweep loop and blocks until it has exited.
func (s *tokenSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *tokenSweeper) sweep(ctx context.Context) {
	result, err := s.tokenService.SweepExpired(ctx)

	// partial results are still reported
	s.metrics.RecordTokensSwept(result.PersistentTokens, result.ResetTokens)

	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, store.ErrStoreUnavailable) {
			s.logger.Warn().Err(err).Str("func", "*tokenSweeper.sweep").Msg("database unavailable, sweep skipped")
			return
		}
		s.logger.Error().Err(err).Str("func", "*tokenSweeper.sweep").Msg("error sweeping expired tokens")
		return
	}

	s.logger.Debug().
		Int64("persistent_tokens", result.PersistentTokens).
		Int64("reset_tokens", result.ResetTokens).
		Msg("expired tokens swept")
}
