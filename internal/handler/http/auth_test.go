// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/app"
	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/metrics"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/internal/store"
	"github.com/MKhiriev/go-mathkids/internal/utils"
	"github.com/MKhiriev/go-mathkids/internal/validators"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

var validRegisterRequest = models.RegisterRequest{
	Name:          "Maria",
	Email:         "parent@example.com",
	Password:      "secret1",
	BirthDate:     "1990-05-17",
	TermsAccepted: true,
}

func TestRegister_Success(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Register(gomock.Any(), validRegisterRequest).Return(models.User{
		UserID: 7,
		Email:  "parent@example.com",
		Name:   "Maria",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, validRegisterRequest))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgUserRegistered, body.Message)
	assert.Equal(t, int64(7), body.User.ID)
	assert.Equal(t, "parent@example.com", body.User.Email)
	assert.Equal(t, models.IdentityKindUser, body.User.Kind)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error surfaces detail",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrPasswordTooShort),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrPasswordTooShort.Error(),
		},
		{
			name:        "terms not accepted",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrTermsNotAccepted),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrTermsNotAccepted.Error(),
		},
		{
			name:        "duplicate email",
			err:         fmt.Errorf("error registering user: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgEmailAlreadyExists,
		},
		{
			name:        "database unavailable",
			err:         store.ErrStoreUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgDatabaseUnavailable,
		},
		{
			name:        "unexpected error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, validRegisterRequest))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func loginRequest(t *testing.T, body models.LoginRequest) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, body))
	req.Header.Set("User-Agent", "test-agent")
	req.RemoteAddr = "198.51.100.4:4321"
	return req
}

func TestLogin_SuccessWithRememberMe(t *testing.T) {
	h, m := newTestHandler(t)
	until := time.Date(2026, 11, 15, 12, 0, 0, 0, time.UTC)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req models.LoginRequest) (models.LoginResult, error) {
			assert.Equal(t, "parent@example.com", req.Email)
			assert.True(t, req.RememberMe)
			assert.Equal(t, "test-agent", req.UserAgent)
			assert.Equal(t, "198.51.100.4", req.IPAddress)
			return models.LoginResult{
				Identity:      testUserIdentity,
				SessionToken:  &models.Token{SignedString: "session.jwt.token"},
				RememberToken: "raw-remember-token",
				RememberUntil: until,
			}, nil
		})

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, models.LoginRequest{Email: "parent@example.com", Password: "secret1", RememberMe: true}))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgLoginSucceeded, body.Message)
	assert.Equal(t, "session.jwt.token", body.SessionToken)
	assert.True(t, body.RememberMe)
	assert.Equal(t, int64(7), body.User.ID)

	cookie := findCookie(rec, rememberCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-remember-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(testRememberTTL.Seconds()), cookie.MaxAge)

	assert.Equal(t, []string{metrics.OutcomeSuccess}, m.metrics.logins)
}

func TestLogin_SecureCookieInProduction(t *testing.T) {
	h, m := newTestHandler(t, func(cfg *config.StructuredConfig) {
		cfg.App.Environment = config.EnvProduction
	})
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{
		Identity:      testUserIdentity,
		SessionToken:  &models.Token{SignedString: "s"},
		RememberToken: "r",
	}, nil)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, models.LoginRequest{Email: "parent@example.com", Password: "secret1", RememberMe: true}))

	cookie := findCookie(rec, rememberCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestLogin_WithoutRememberMeSetsNoCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{
		Identity:     testAdminIdentity,
		SessionToken: &models.Token{SignedString: "admin.session"},
	}, nil)

	rec := httptest.NewRecorder()
	h.login(rec, loginRequest(t, models.LoginRequest{Email: "adm@email.com", Password: "123456"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, findCookie(rec, rememberCookieName))

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.RememberMe)
	assert.Equal(t, models.IdentityKindAdmin, body.User.Kind)
	assert.Equal(t, []string{metrics.OutcomeAdmin}, m.metrics.logins)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantOutcome string
	}{
		{
			name:        "invalid credentials",
			err:         service.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidCredentials,
			wantOutcome: metrics.OutcomeInvalidCredentials,
		},
		{
			name:        "invalid email",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrInvalidEmail),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrInvalidEmail.Error(),
			wantOutcome: metrics.OutcomeInvalidInput,
		},
		{
			name:        "degraded mode",
			err:         store.ErrStoreUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: app.MsgDatabaseUnavailable,
			wantOutcome: metrics.OutcomeUnavailable,
		},
		{
			name:        "token creation failed",
			err:         service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
			wantOutcome: metrics.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, tt.err)

			rec := httptest.NewRecorder()
			h.login(rec, loginRequest(t, models.LoginRequest{Email: "parent@example.com", Password: "wrong-pass"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			assert.Nil(t, findCookie(rec, rememberCookieName))
			assert.Equal(t, []string{tt.wantOutcome}, m.metrics.logins)
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, m := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.login(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("[")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{metrics.OutcomeInvalidInput}, m.metrics.logins)
}

// ─────────────────────────────────────────────
// verifyToken
// ─────────────────────────────────────────────

func TestVerifyToken_FromCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyRememberToken(gomock.Any(), "cookie-token").Return(testUserIdentity, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.AddCookie(&http.Cookie{Name: rememberCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	h.verifyToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.VerifyTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.AutoLogin)
	assert.Equal(t, app.MsgAutoLogin, body.Message)
	assert.Equal(t, "parent@example.com", body.User.Email)
}

func TestVerifyToken_FromHeader(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyRememberToken(gomock.Any(), "header-token").Return(testAdminIdentity, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.Header.Set(rememberTokenHeader, "header-token")
	rec := httptest.NewRecorder()

	h.verifyToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyToken_MissingToken(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.verifyToken(rec, httptest.NewRequest(http.MethodGet, "/api/verify-token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgRememberTokenInvalid, decodeMessage(t, rec))
}

func TestVerifyToken_InvalidTokenClearsCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyRememberToken(gomock.Any(), "stale").Return(models.Identity{}, service.ErrInvalidOrExpiredToken)

	req := httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.AddCookie(&http.Cookie{Name: rememberCookieName, Value: "stale"})
	rec := httptest.NewRecorder()

	h.verifyToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	cookie := findCookie(rec, rememberCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestVerifyToken_StoreUnavailableKeepsCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().VerifyRememberToken(gomock.Any(), "token").
		Return(models.Identity{}, fmt.Errorf("error loading persistent tokens: %w", store.ErrStoreUnavailable))

	req := httptest.NewRequest(http.MethodGet, "/api/verify-token", nil)
	req.AddCookie(&http.Cookie{Name: rememberCookieName, Value: "token"})
	rec := httptest.NewRecorder()

	h.verifyToken(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Nil(t, findCookie(rec, rememberCookieName))
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_RevokesAndClearsCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Logout(gomock.Any(), "cookie-token")

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: rememberCookieName, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgLoggedOut, decodeMessage(t, rec))
	cookie := findCookie(rec, rememberCookieName)
	require.NotNil(t, cookie)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestLogout_WithoutTokenStillSucceeds(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.logout(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, findCookie(rec, rememberCookieName))
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_ReturnsIdentityFromContext(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), testUserIdentity))
	rec := httptest.NewRecorder()

	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, app.MsgCurrentUser, body.Message)
	assert.Equal(t, models.NewUserResponse(testUserIdentity), body.User)
}

func TestMe_WithoutIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
