// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mathkids/models"
)

// unavailableStore stands in for every repository when no database is
// configured or it could not be reached at startup. Each call fails with
// [ErrStoreUnavailable], which the service layer turns into admin-only mode.
type unavailableStore struct{}

func (unavailableStore) CreateUser(context.Context, models.User) (models.User, error) {
	return models.User{}, ErrStoreUnavailable
}

func (unavailableStore) FindUserByEmail(context.Context, string) (models.User, error) {
	return models.User{}, ErrStoreUnavailable
}

func (unavailableStore) FindUserByID(context.Context, int64) (models.User, error) {
	return models.User{}, ErrStoreUnavailable
}

func (unavailableStore) SavePersistentToken(context.Context, models.PersistentToken) (models.PersistentToken, error) {
	return models.PersistentToken{}, ErrStoreUnavailable
}

func (unavailableStore) FindActivePersistentTokens(context.Context) ([]models.VerifiedToken, error) {
	return nil, ErrStoreUnavailable
}

func (unavailableStore) TouchPersistentToken(context.Context, int64) error {
	return ErrStoreUnavailable
}

func (unavailableStore) DeletePersistentToken(context.Context, int64) error {
	return ErrStoreUnavailable
}

func (unavailableStore) DeleteUserPersistentTokens(context.Context, int64) (int64, error) {
	return 0, ErrStoreUnavailable
}

func (unavailableStore) DeleteExpiredPersistentTokens(context.Context) (int64, error) {
	return 0, ErrStoreUnavailable
}

func (unavailableStore) SaveResetToken(context.Context, models.ResetToken) (models.ResetToken, error) {
	return models.ResetToken{}, ErrStoreUnavailable
}

func (unavailableStore) FindRedeemableResetTokens(context.Context, int64) ([]models.ResetToken, error) {
	return nil, ErrStoreUnavailable
}

func (unavailableStore) RedeemResetToken(context.Context, int64, int64, string) error {
	return ErrStoreUnavailable
}

func (unavailableStore) DeleteExpiredResetTokens(context.Context) (int64, error) {
	return 0, ErrStoreUnavailable
}

func (unavailableStore) Ping(context.Context) (time.Duration, error) {
	return 0, ErrStoreUnavailable
}
