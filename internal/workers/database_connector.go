// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetryInterval = 30 * time.Second
	initialRetryInterval = time.Second
)

// databaseConnector keeps retrying the database until it is ready and then
// starts the workers that depend on it.
type databaseConnector struct {
	database        Database
	initialInterval time.Duration
	maxInterval     time.Duration
	onReady         []Worker

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDatabaseConnector creates a worker that calls database.EnsureReady with
// exponential backoff capped at maxInterval. The onReady workers are started
// after the first successful call and stopped together with the connector.
func NewDatabaseConnector(database Database, maxInterval time.Duration, logger *logger.Logger, onReady ...Worker) Worker {
	if maxInterval <= 0 {
		maxInterval = defaultRetryInterval
	}

	return &databaseConnector{
		database:        database,
		initialInterval: min(initialRetryInterval, maxInterval),
		maxInterval:     maxInterval,
		onReady:         onReady,
		logger:          logger,
	}
}

// Start stops any previous connection loop and launches a new one.
func (c *databaseConnector) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()

		if err := c.connect(jobCtx); err != nil {
			// only a cancelled context ends the retries
			return
		}

		c.logger.Info().Int("workers", len(c.onReady)).Msg("database is ready, starting dependent workers")
		for _, w := range c.onReady {
			w.Start(jobCtx)
		}
	}()
}

// Stop cancels the connection loop, waits for it and stops the dependent
// workers in reverse order.
func (c *databaseConnector) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()

	for i := len(c.onReady) - 1; i >= 0; i-- {
		c.onReady[i].Stop()
	}
}

func (c *databaseConnector) connect(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxInterval = c.maxInterval
	bo.MaxElapsedTime = 0

	attempt := func() error {
		return c.database.EnsureReady(ctx)
	}
	notify := func(err error, next time.Duration) {
		c.logger.Warn().Err(err).Str("func", "*databaseConnector.connect").Dur("retry_in", next).Msg("database is not ready")
	}

	return backoff.RetryNotify(attempt, backoff.WithContext(bo, ctx), notify)
}
