// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/models"
)

// forgotPassword answers with the same message whether or not the email
// belongs to an account.
func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ForgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.forgotPassword", err)
		return
	}

	result, err := h.services.PasswordResetService.RequestReset(ctx, req, requestOrigin(r))
	if err != nil {
		writeError(w, r, "*Handler.forgotPassword", err)
		return
	}

	h.metrics.RecordResetRequest()
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.metrics.RecordPasswordReset(metrics.OutcomeInvalidInput)
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	if err := h.services.PasswordResetService.ResetPassword(ctx, req); err != nil {
		h.metrics.RecordPasswordReset(resetOutcome(err))
		writeError(w, r, "*Handler.resetPassword", err)
		return
	}

	h.metrics.RecordPasswordReset(metrics.OutcomeSuccess)
	log.Info().Msg("password changed through reset token")

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func resetOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, service.ErrAdminResetForbidden):
		return metrics.OutcomeForbidden
	case errors.Is(err, service.ErrInvalidOrExpiredToken), errors.Is(err, store.ErrResetTokenNotRedeemable):
		return metrics.OutcomeInvalidToken
	case errors.Is(err, store.ErrStoreUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}

// requestOrigin returns the Origin header or, when absent, the scheme and
// host the request was sent to.
func requestOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	if r.Host == "" {
		return ""
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
