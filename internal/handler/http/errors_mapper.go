// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/internal/validators"
)

// errorStatus maps a sentinel error to the HTTP status and the message
// written to the client. Entries are matched in order.
type errorStatus struct {
	err     error
	status  int
	message string
}

var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidInput, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrAdminResetForbidden, http.StatusForbidden, app.MsgAdminResetForbidden},
	{service.ErrInvalidOrExpiredToken, http.StatusBadRequest, app.MsgResetTokenInvalid},
	{store.ErrResetTokenNotRedeemable, http.StatusBadRequest, app.MsgResetTokenInvalid},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
}

// validationErrors are reported to the client verbatim.
var validationErrors = []error{
	validators.ErrEmptyName,
	validators.ErrNameTooLong,
	validators.ErrEmptyEmail,
	validators.ErrInvalidEmail,
	validators.ErrEmptyPassword,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordTooLong,
	validators.ErrEmptyBirthDate,
	validators.ErrInvalidBirthDate,
	validators.ErrFutureBirthDate,
	validators.ErrTermsNotAccepted,
	validators.ErrEmptyToken,
}

func statusFromError(err error) int {
	status, _ := mapError(err)
	return status
}

// mapError returns the HTTP status and client message for err. Unknown
// errors become 500 with a generic message.
func mapError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if !errors.Is(err, entry.err) {
			continue
		}
		if entry.err == service.ErrInvalidInput {
			return entry.status, validationMessage(err)
		}
		return entry.status, entry.message
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func validationMessage(err error) string {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return app.MsgInvalidDataProvided
}

// writeError logs err and writes the mapped {"message"} response.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := mapError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteMessage(w, message, status)
}
