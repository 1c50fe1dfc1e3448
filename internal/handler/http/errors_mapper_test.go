// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid json", fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("unexpected EOF")), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"validation detail", fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrFutureBirthDate), http.StatusBadRequest, validators.ErrFutureBirthDate.Error()},
		{"validation without detail", service.ErrInvalidInput, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unsupported type is not leaked", fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrUnsupportedType), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
		{"admin reset", service.ErrAdminResetForbidden, http.StatusForbidden, app.MsgAdminResetForbidden},
		{"reset token", service.ErrInvalidOrExpiredToken, http.StatusBadRequest, app.MsgResetTokenInvalid},
		{"duplicate email", fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), http.StatusConflict, app.MsgEmailAlreadyExists},
		{"store unavailable", fmt.Errorf("query: %w", store.ErrStoreUnavailable), http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
		{"sql failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("syntax")), http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}
