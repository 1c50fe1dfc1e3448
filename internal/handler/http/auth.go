// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/models"
)

// decodeJSON decodes the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		User:    models.NewUserResponse(user.Identity()),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.metrics.RecordLogin(metrics.OutcomeInvalidInput)
		writeError(w, r, "*Handler.login", err)
		return
	}
	req.ClientMetadata = models.ClientMetadata{
		UserAgent: r.UserAgent(),
		IPAddress: utils.ClientIP(r),
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.metrics.RecordLogin(loginOutcome(err))
		writeError(w, r, "*Handler.login", err)
		return
	}

	if result.Identity.IsAdmin() {
		h.metrics.RecordLogin(metrics.OutcomeAdmin)
	} else {
		h.metrics.RecordLogin(metrics.OutcomeSuccess)
	}

	if result.RememberMe() {
		h.setRememberCookie(w, result.RememberToken, result.RememberUntil)
	}

	log.Info().
		Int64("user_id", result.Identity.UserID).
		Str("kind", string(result.Identity.Kind)).
		Bool("remember_me", result.RememberMe()).
		Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message:      app.MsgLoginSucceeded,
		User:         models.NewUserResponse(result.Identity),
		SessionToken: result.SessionToken.String(),
		RememberMe:   result.RememberMe(),
	}, http.StatusOK)
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, service.ErrInvalidCredentials):
		return metrics.OutcomeInvalidCredentials
	case errors.Is(err, store.ErrStoreUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}

// verifyToken performs the automatic login with a remember-me token.
func (h *Handler) verifyToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawToken := rememberTokenFromRequest(r)
	if rawToken == "" {
		utils.WriteMessage(w, app.MsgRememberTokenInvalid, http.StatusUnauthorized)
		return
	}

	identity, err := h.services.AuthService.VerifyRememberToken(ctx, rawToken)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidOrExpiredToken):
		log.Info().Err(err).Str("func", "*Handler.verifyToken").Msg("remember-me token rejected")
		h.clearRememberCookie(w)
		utils.WriteMessage(w, app.MsgRememberTokenInvalid, http.StatusUnauthorized)
		return
	default:
		writeError(w, r, "*Handler.verifyToken", err)
		return
	}

	utils.WriteJSON(w, models.VerifyTokenResponse{
		Message:   app.MsgAutoLogin,
		User:      models.NewUserResponse(identity),
		AutoLogin: true,
	}, http.StatusOK)
}

// logout always succeeds. The presented token is revoked on a best-effort
// basis and the cookie is cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if rawToken := rememberTokenFromRequest(r); rawToken != "" {
		h.services.AuthService.Logout(r.Context(), rawToken)
	}

	h.clearRememberCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

// me returns the identity resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		Message: app.MsgCurrentUser,
		User:    models.NewUserResponse(identity),
	}, http.StatusOK)
}
