// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-mathkids/internal/mock"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDatabaseProvider_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := models.User{UserID: 5, Email: "ana@example.com", Name: "Ana", PasswordHash: mustHash(t, "secret1")}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(user, nil)

		identity, err := NewDatabaseProvider(users, testHasher).Authenticate(ctx, "  Ana@Example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, user.Identity(), identity)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(user, nil)

		_, err := NewDatabaseProvider(users, testHasher).Authenticate(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email spends a dummy comparison", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		hasher := mock.NewMockPasswordHasher(ctrl)
		users.EXPECT().FindUserByEmail(ctx, "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)
		hasher.EXPECT().VerifyDummy("secret1")

		_, err := NewDatabaseProvider(users, hasher).Authenticate(ctx, "nobody@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		users.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrStoreUnavailable)

		_, err := NewDatabaseProvider(users, testHasher).Authenticate(ctx, "ana@example.com", "secret1")
		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})
}

func TestFixedAdminProvider_Authenticate(t *testing.T) {
	ctx := context.Background()
	provider := NewFixedAdminProvider("adm@email.com", "123456")

	identity, err := provider.Authenticate(ctx, " ADM@email.com ", "123456")
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
	assert.Equal(t, "adm@email.com", identity.Email)
	assert.Equal(t, AdminName, identity.Name)
	assert.Zero(t, identity.UserID)

	_, err = provider.Authenticate(ctx, "adm@email.com", "1234567")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = provider.Authenticate(ctx, "other@email.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewFixedAdminProvider("", "").Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_ProviderChain(t *testing.T) {
	ctx := context.Background()
	userIdentity := models.Identity{UserID: 1, Kind: models.IdentityKindUser}
	adminID := models.Identity{Kind: models.IdentityKindAdmin}
	boom := errors.New("boom")

	tests := []struct {
		name      string
		firstRet  error
		secondRet error
		want      models.Identity
		wantErr   error
	}{
		{name: "first provider wins", firstRet: nil, want: userIdentity},
		{name: "fallback to second", firstRet: ErrInvalidCredentials, secondRet: nil, want: adminID},
		{name: "degraded admin login", firstRet: store.ErrStoreUnavailable, secondRet: nil, want: adminID},
		{name: "all invalid", firstRet: ErrInvalidCredentials, secondRet: ErrInvalidCredentials, wantErr: ErrInvalidCredentials},
		{name: "store down and not admin", firstRet: store.ErrStoreUnavailable, secondRet: ErrInvalidCredentials, wantErr: store.ErrStoreUnavailable},
		{name: "internal error surfaces", firstRet: boom, secondRet: ErrInvalidCredentials, wantErr: boom},
		{name: "internal error still allows admin", firstRet: boom, secondRet: nil, want: adminID},
		{name: "store down wins over internal error", firstRet: store.ErrStoreUnavailable, secondRet: boom, wantErr: store.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			first := mock.NewMockAuthProvider(ctrl)
			second := mock.NewMockAuthProvider(ctrl)

			first.EXPECT().Authenticate(ctx, "e", "p").Return(userIdentity, tt.firstRet)
			if tt.firstRet != nil {
				second.EXPECT().Authenticate(ctx, "e", "p").Return(adminID, tt.secondRet)
			}

			got, err := authenticate(ctx, []AuthProvider{first, second}, "e", "p")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
