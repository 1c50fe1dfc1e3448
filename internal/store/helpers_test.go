// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := &DB{
		DB:                 sqlDB,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}
	db.ready.Store(true)

	return db, mock
}

// newPingTestDB returns a DB that has not been connected yet. Pings are
// expected explicitly and migrations are counted instead of run.
func newPingTestDB(t *testing.T, migrateErr error) (*DB, sqlmock.Sqlmock, *int) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrated := 0
	return &DB{
		DB:                 sqlDB,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
		migrate: func(context.Context, *sql.DB) error {
			migrated++
			return migrateErr
		},
	}, mock, &migrated
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
