// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
)

// auth is an HTTP middleware that enforces session token authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// via [service.AuthService.ParseSessionToken] and stores the resulting
// identity in the request context under [utils.IdentityCtxKey].
//
// Requests are rejected with 401 Unauthorized when the header is missing or
// malformed, or when the token is invalid or expired. A database outage
// while resolving a user token is reported as 503.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteMessage(w, app.MsgMissingAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseSessionToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, store.ErrStoreUnavailable) {
				writeError(w, r, "*Handler.auth", err)
				return
			}
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			utils.WriteMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// getTokenFromAuthHeader extracts the token from a
// "Authorization: Bearer <token>" header value. The scheme is matched
// case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(tokenString), nil
}
