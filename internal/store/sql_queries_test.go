// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-mathkids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCreateUserQuery(t *testing.T) {
	birth := time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC)
	user := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", BirthDate: birth, TermsAccepted: true}

	query, args, err := buildCreateUserQuery(user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning id, created_at")
	assert.Contains(t, query, "$5")
	assert.Equal(t, []any{"Ana", "ana@example.com", "hash", birth, true}, args)
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery("  Ana@Example.com ")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users")
	assert.Contains(t, query, "LOWER(email) = LOWER($1)")
	assert.Contains(t, query, "LIMIT 1")
	for _, col := range userColumns {
		assert.Contains(t, query, col)
	}
	assert.Equal(t, []any{"Ana@Example.com"}, args)
}

func Test_buildSelectActivePersistentTokensQuery(t *testing.T) {
	query, args, err := buildSelectActivePersistentTokensQuery()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Contains(t, query, "FROM auth_tokens t")
	assert.Contains(t, query, "JOIN users u ON u.id = t.user_id")
	assert.Contains(t, query, "t.expires_at > NOW()")
	assert.Contains(t, query, "ORDER BY t.created_at DESC")
}

func Test_buildTouchPersistentTokenQuery(t *testing.T) {
	query, args, err := buildTouchPersistentTokenQuery(9)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE auth_tokens SET last_used_at = NOW()")
	assert.Contains(t, query, "WHERE id = $1")
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_buildDeleteExpiredQuery(t *testing.T) {
	for _, table := range []string{tableAuthTokens, tablePasswordResets} {
		query, args, err := buildDeleteExpiredQuery(table)
		require.NoError(t, err)

		assert.Equal(t, "DELETE FROM "+table+" WHERE expires_at <= NOW()", query)
		assert.Empty(t, args)
	}
}

func Test_buildSelectRedeemableResetTokensQuery(t *testing.T) {
	query, args, err := buildSelectRedeemableResetTokensQuery(7)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM password_resets")
	assert.Contains(t, query, "used = $1")
	assert.Contains(t, query, "user_id = $2")
	assert.Contains(t, query, "expires_at > NOW()")
	assert.Contains(t, query, "ORDER BY created_at DESC")
	assert.Equal(t, []any{false, int64(7)}, args)
}

func Test_buildMarkResetTokenUsedQuery(t *testing.T) {
	query, args, err := buildMarkResetTokenUsedQuery(5, 7)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE password_resets SET used = $1"))
	assert.Contains(t, query, "id = $2")
	assert.Contains(t, query, "used = $3")
	assert.Contains(t, query, "user_id = $4")
	assert.Contains(t, query, "expires_at > NOW()")
	assert.Equal(t, []any{true, int64(5), false, int64(7)}, args)
}

func Test_buildUpdateUserPasswordQuery(t *testing.T) {
	query, args, err := buildUpdateUserPasswordQuery(7, "new-hash")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET password_hash = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"new-hash", int64(7)}, args)
}
