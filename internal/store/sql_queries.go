// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mathkids/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const healthCheckQuery = `SELECT 1;`

const (
	tableUsers          = "users"
	tableAuthTokens     = "auth_tokens"
	tablePasswordResets = "password_resets"
)

var userColumns = []string{
	"id",
	"name",
	"email",
	"password_hash",
	"birth_date",
	"terms_accepted",
	"created_at",
}

var persistentTokenColumns = []string{
	"t.id",
	"t.user_id",
	"t.token_hash",
	"t.expires_at",
	"t.created_at",
	"t.last_used_at",
	"t.user_agent",
	"t.ip_address",
	"u.email",
	"u.name",
}

var resetTokenColumns = []string{
	"id",
	"user_id",
	"token_hash",
	"expires_at",
	"created_at",
	"used",
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(tableUsers).
		Columns("name", "email", "password_hash", "birth_date", "terms_accepted").
		Values(user.Name, user.Email, user.PasswordHash, user.BirthDate, user.TermsAccepted).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(tableUsers).
		Where(sq.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email))).
		Limit(1).
		ToSql()
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateUserPasswordQuery(userID int64, passwordHash string) (string, []any, error) {
	return psql.Update(tableUsers).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertPersistentTokenQuery(token models.PersistentToken) (string, []any, error) {
	return psql.Insert(tableAuthTokens).
		Columns("user_id", "token_hash", "expires_at", "user_agent", "ip_address").
		Values(token.UserID, token.TokenHash, token.ExpiresAt, token.UserAgent, token.IPAddress).
		Suffix("RETURNING id, created_at, last_used_at").
		ToSql()
}

func buildSelectActivePersistentTokensQuery() (string, []any, error) {
	return psql.Select(persistentTokenColumns...).
		From(fmt.Sprintf("%s t", tableAuthTokens)).
		Join(fmt.Sprintf("%s u ON u.id = t.user_id", tableUsers)).
		Where("t.expires_at > NOW()").
		OrderBy("t.created_at DESC", "t.id DESC").
		ToSql()
}

func buildTouchPersistentTokenQuery(tokenID int64) (string, []any, error) {
	return psql.Update(tableAuthTokens).
		Set("last_used_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildDeletePersistentTokenQuery(tokenID int64) (string, []any, error) {
	return psql.Delete(tableAuthTokens).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildDeleteUserPersistentTokensQuery(userID int64) (string, []any, error) {
	return psql.Delete(tableAuthTokens).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExpiredQuery(table string) (string, []any, error) {
	return psql.Delete(table).
		Where("expires_at <= NOW()").
		ToSql()
}

func buildInsertResetTokenQuery(token models.ResetToken) (string, []any, error) {
	return psql.Insert(tablePasswordResets).
		Columns("user_id", "token_hash", "expires_at").
		Values(token.UserID, token.TokenHash, token.ExpiresAt).
		Suffix("RETURNING id, created_at, used").
		ToSql()
}

func buildSelectRedeemableResetTokensQuery(userID int64) (string, []any, error) {
	return psql.Select(resetTokenColumns...).
		From(tablePasswordResets).
		Where(sq.Eq{"user_id": userID, "used": false}).
		Where("expires_at > NOW()").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

// buildMarkResetTokenUsedQuery is the conditional update that makes a
// redemption single-use under concurrency: only one caller can flip used.
func buildMarkResetTokenUsedQuery(tokenID, userID int64) (string, []any, error) {
	return psql.Update(tablePasswordResets).
		Set("used", true).
		Where(sq.Eq{"id": tokenID, "user_id": userID, "used": false}).
		Where("expires_at > NOW()").
		ToSql()
}
