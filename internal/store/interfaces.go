// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mathkids/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by email, ignoring case and
	// surrounding whitespace. A miss yields [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key. A miss yields
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PersistentTokenRepository persists hashed "remember me" tokens.
type PersistentTokenRepository interface {
	SavePersistentToken(ctx context.Context, token models.PersistentToken) (models.PersistentToken, error)

	// FindActivePersistentTokens returns every non-expired token joined with
	// its owner, newest first.
	FindActivePersistentTokens(ctx context.Context) ([]models.VerifiedToken, error)

	// TouchPersistentToken sets last_used_at to the current time.
	TouchPersistentToken(ctx context.Context, tokenID int64) error

	DeletePersistentToken(ctx context.Context, tokenID int64) error
	DeleteUserPersistentTokens(ctx context.Context, userID int64) (int64, error)
	DeleteExpiredPersistentTokens(ctx context.Context) (int64, error)
}

// ResetTokenRepository persists hashed password reset tokens.
type ResetTokenRepository interface {
	SaveResetToken(ctx context.Context, token models.ResetToken) (models.ResetToken, error)

	// FindRedeemableResetTokens returns the user's unused, unexpired
	// tokens, newest first.
	FindRedeemableResetTokens(ctx context.Context, userID int64) ([]models.ResetToken, error)

	// RedeemResetToken marks the token used, stores the new password hash
	// and deletes the user's persistent tokens in one transaction. A token
	// that is no longer redeemable yields [ErrResetTokenNotRedeemable] and
	// changes nothing.
	RedeemResetToken(ctx context.Context, tokenID, userID int64, newPasswordHash string) error

	DeleteExpiredResetTokens(ctx context.Context) (int64, error)
}

// HealthRepository checks that the database answers.
type HealthRepository interface {
	// Ping runs a trivial query and reports how long it took.
	Ping(ctx context.Context) (time.Duration, error)
}
