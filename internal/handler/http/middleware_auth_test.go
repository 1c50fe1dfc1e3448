// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", wantToken: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer  ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_PassesIdentityToNext(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().ParseSessionToken(gomock.Any(), "session.jwt").Return(testUserIdentity, nil)

	var got models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer session.jwt")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserIdentity, got)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgMissingAuthorizationHeader,
		},
		{
			name:        "malformed header",
			header:      "Token abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "expired token",
			header:      "Bearer expired",
			parseErr:    service.ErrInvalidOrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:        "database down",
			header:      "Bearer valid",
			parseErr:    errors.Join(errors.New("error finding user"), store.ErrStoreUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgDatabaseUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.parseErr != nil {
				m.auth.EXPECT().ParseSessionToken(gomock.Any(), gomock.Any()).Return(models.Identity{}, tt.parseErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}
