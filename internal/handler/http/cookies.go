// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

const (
	// rememberCookieName carries the remember-me token.
	rememberCookieName = "mathkids_auth_token"
	// rememberTokenHeader is accepted instead of the cookie by clients that
	// cannot send cookies.
	rememberTokenHeader = "X-Remember-Token"
)

func (h *Handler) setRememberCookie(w http.ResponseWriter, token string, until time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     rememberCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.app.RememberMeTTL.Seconds()),
		Expires:  until.UTC(),
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearRememberCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     rememberCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.app.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

// rememberTokenFromRequest returns the remember-me token from the cookie,
// falling back to the X-Remember-Token header.
func rememberTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(rememberCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(rememberTokenHeader)
}
