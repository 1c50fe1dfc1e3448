// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/migrations"
	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the pgx-backed connection pool together with the error
// classifier and the per-query timeout shared by every repository.
//
// The pool is opened lazily: a database that does not answer at startup is
// retried by [DB.EnsureReady] on the next call, which also applies pending
// migrations the first time the database responds.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	queryTimeout       time.Duration

	migrate func(ctx context.Context, db *sql.DB) error
	readyMu sync.Mutex
	ready   atomic.Bool
}

// connectInitialInterval is the first delay between startup ping attempts.
const connectInitialInterval = 250 * time.Millisecond

// OpenPostgres opens the pool described by cfg without contacting the
// database.
func OpenPostgres(cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%w: database dsn is empty", ErrStoreUnavailable)
	}

	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "OpenPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		queryTimeout:       cfg.QueryTimeout,
		migrate:            migrations.Migrate,
	}, nil
}

// Ready reports whether the database answered and its migrations are applied.
func (db *DB) Ready() bool {
	return db.ready.Load()
}

// EnsureReady pings the database and applies migrations the first time it
// answers. Once ready it returns nil without a round trip. While another
// goroutine is checking, it fails fast with [ErrStoreUnavailable].
func (db *DB) EnsureReady(ctx context.Context) error {
	if db.ready.Load() {
		return nil
	}
	if !db.readyMu.TryLock() {
		return fmt.Errorf("%w: database connection is being checked", ErrStoreUnavailable)
	}
	defer db.readyMu.Unlock()

	if db.ready.Load() {
		return nil
	}

	pingCtx, cancel := db.withTimeout(ctx)
	err := db.PingContext(pingCtx)
	cancel()
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.EnsureReady").Msg("database is not reachable")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = db.applyMigrations(ctx); err != nil {
		return err
	}

	db.ready.Store(true)
	db.logger.Info().Str("func", "*DB.EnsureReady").Msg("connected to database successfully")
	return nil
}

// connect pings with exponential backoff until maxElapsed elapses (a single
// attempt when it is zero), then applies migrations. A failed ping wraps
// [ErrStoreUnavailable]; a failed migration does not.
func (db *DB) connect(ctx context.Context, maxElapsed time.Duration) error {
	if err := db.pingWithRetry(ctx, maxElapsed); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	db.readyMu.Lock()
	defer db.readyMu.Unlock()

	if err := db.applyMigrations(ctx); err != nil {
		return err
	}

	db.ready.Store(true)
	db.logger.Info().Str("func", "*DB.connect").Msg("connected to database successfully")
	return nil
}

func (db *DB) pingWithRetry(ctx context.Context, maxElapsed time.Duration) error {
	var policy backoff.BackOff = &backoff.StopBackOff{}
	if maxElapsed > 0 {
		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = connectInitialInterval
		bo.MaxElapsedTime = maxElapsed
		policy = bo
	}

	attempt := 0
	ping := func() error {
		attempt++
		pingCtx, cancel := db.withTimeout(ctx)
		defer cancel()

		err := db.PingContext(pingCtx)
		if err != nil && db.errorClassificator.Classify(err) != Unavailable {
			return backoff.Permanent(err)
		}
		if err != nil {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed, retrying")
		}
		return err
	}

	return backoff.Retry(ping, backoff.WithContext(policy, ctx))
}

func (db *DB) applyMigrations(ctx context.Context) error {
	migrate := db.migrate
	if migrate == nil {
		migrate = migrations.Migrate
	}
	if err := migrate(ctx, db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.applyMigrations").Msg("failed to apply migrations")
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// withTimeout bounds a single round trip by the configured query timeout.
// A zero timeout leaves ctx untouched.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// wrapError attaches sentinel to err, or [ErrStoreUnavailable] instead when
// the failure is a connectivity problem.
func (db *DB) wrapError(sentinel, err error) error {
	if db.classify(err) == Unavailable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NewPostgresErrorClassifier().Classify(err)
	}
	return db.errorClassificator.Classify(err)
}

// isNoRows reports whether err signals an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// execAffected runs a DML statement under the query timeout and returns the
// number of affected rows.
func (db *DB) execAffected(ctx context.Context, funcName, query string, args []any) (int64, error) {
	if err := db.EnsureReady(ctx); err != nil {
		return 0, err
	}

	log := logger.FromContext(ctx)

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
