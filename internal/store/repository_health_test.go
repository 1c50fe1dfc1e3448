// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRepository_Ping(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewHealthRepository(db)

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	elapsed, err := repo.Ping(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}

func TestHealthRepository_PingUnavailable(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewHealthRepository(db)

	mock.ExpectQuery("SELECT 1").
		WillReturnError(pgError(pgerrcode.ConnectionException))

	_, err := repo.Ping(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
