// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPersistentTokenRepo(t *testing.T) (*persistentTokenRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &persistentTokenRepository{db: db, logger: logger.Nop()}, mock
}

var activeTokenColumns = []string{
	"id", "user_id", "token_hash", "expires_at", "created_at", "last_used_at",
	"user_agent", "ip_address", "email", "name",
}

func TestSavePersistentToken_Success(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)
	now := time.Now()
	token := models.PersistentToken{
		UserID:         4,
		TokenHash:      "digest",
		ExpiresAt:      now.Add(time.Hour),
		ClientMetadata: models.ClientMetadata{UserAgent: "ua", IPAddress: "10.0.0.1"},
	}

	mock.ExpectQuery("INSERT INTO auth_tokens").
		WithArgs(int64(4), "digest", token.ExpiresAt, "ua", "10.0.0.1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "last_used_at"}).AddRow(int64(11), now, now))

	saved, err := repo.SavePersistentToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(11), saved.ID)
	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, "digest", saved.TokenHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePersistentToken_Unavailable(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectQuery("INSERT INTO auth_tokens").
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.SavePersistentToken(context.Background(), models.PersistentToken{UserID: 1})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestFindActivePersistentTokens_Success(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM auth_tokens t JOIN users u").
		WillReturnRows(sqlmock.NewRows(activeTokenColumns).
			AddRow(int64(2), int64(7), "h2", now.Add(time.Hour), now, now, "ua2", "ip2", "b@example.com", "B").
			AddRow(int64(1), int64(5), "h1", now.Add(time.Hour), now.Add(-time.Hour), now, "ua1", "ip1", "a@example.com", "A"))

	tokens, err := repo.FindActivePersistentTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, int64(2), tokens[0].Token.ID)
	assert.Equal(t, "h2", tokens[0].Token.TokenHash)
	assert.Equal(t, "ua2", tokens[0].Token.UserAgent)
	assert.Equal(t, int64(7), tokens[0].User.UserID)
	assert.Equal(t, "b@example.com", tokens[0].User.Email)
	assert.Equal(t, "A", tokens[1].User.Name)
}

func TestFindActivePersistentTokens_Empty(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM auth_tokens").
		WillReturnRows(sqlmock.NewRows(activeTokenColumns))

	tokens, err := repo.FindActivePersistentTokens(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestFindActivePersistentTokens_ScanError(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM auth_tokens").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := repo.FindActivePersistentTokens(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestFindActivePersistentTokens_RowsError(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM auth_tokens").
		WillReturnRows(sqlmock.NewRows(activeTokenColumns).
			AddRow(int64(1), int64(5), "h1", now, now, now, "", "", "a@example.com", "A").
			RowError(0, errors.New("broken row")))

	_, err := repo.FindActivePersistentTokens(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestTouchPersistentToken(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectExec("UPDATE auth_tokens SET last_used_at = NOW\\(\\)").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.TouchPersistentToken(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePersistentToken(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeletePersistentToken(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUserPersistentTokens(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE user_id = \\$1").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.DeleteUserPersistentTokens(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestDeleteExpiredPersistentTokens(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE expires_at <= NOW\\(\\)").
		WillReturnResult(sqlmock.NewResult(0, 6))

	n, err := repo.DeleteExpiredPersistentTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}

func TestDeleteExpiredPersistentTokens_Error(t *testing.T) {
	repo, mock := newTestPersistentTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens").
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteExpiredPersistentTokens(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
