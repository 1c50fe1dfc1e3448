// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
)

// Storages aggregates every repository the services depend on.
//
// Configured reports whether a database DSN was provided. Without a DSN all
// repositories return [ErrStoreUnavailable]. With a DSN the repositories are
// always backed by the pool; calls made while the database is down fail with
// [ErrStoreUnavailable] and are retried on the next call.
type Storages struct {
	UserRepository            UserRepository
	PersistentTokenRepository PersistentTokenRepository
	ResetTokenRepository      ResetTokenRepository
	HealthRepository          HealthRepository

	Configured bool

	db *DB
}

// NewStorages opens the PostgreSQL pool, waits up to
// cfg.DB.ConnectTimeout for the database, applies migrations and wires the
// repositories. A missing DSN or an unreachable database is not an error:
// the returned storages serve the administrator only until the database
// answers. A failed migration on a reachable database is returned as an
// error.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("database is not configured, only the administrator can log in")
		return NewUnavailableStorages(false), nil
	}

	db, err := OpenPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	err = db.connect(ctx, cfg.DB.ConnectTimeout)
	if errors.Is(err, ErrStoreUnavailable) {
		log.Error().Err(err).Str("func", "NewStorages").Msg("database is unreachable, only the administrator can log in until it answers")
		return newPostgresStorages(db, log), nil
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return newPostgresStorages(db, log), nil
}

func newPostgresStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:            NewUserRepository(db, log),
		PersistentTokenRepository: NewPersistentTokenRepository(db, log),
		ResetTokenRepository:      NewResetTokenRepository(db, log),
		HealthRepository:          NewHealthRepository(db),
		Configured:                true,
		db:                        db,
	}
}

// NewUnavailableStorages returns storages whose every call fails with
// [ErrStoreUnavailable].
func NewUnavailableStorages(configured bool) *Storages {
	unavailable := unavailableStore{}
	return &Storages{
		UserRepository:            unavailable,
		PersistentTokenRepository: unavailable,
		ResetTokenRepository:      unavailable,
		HealthRepository:          unavailable,
		Configured:                configured,
	}
}

// Connected reports whether the database has answered and is migrated.
func (s *Storages) Connected() bool {
	return s.db != nil && s.db.Ready()
}

// EnsureReady connects to the database and applies migrations if that has
// not happened yet.
func (s *Storages) EnsureReady(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("%w: database is not configured", ErrStoreUnavailable)
	}
	return s.db.EnsureReady(ctx)
}

// Close releases the connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
