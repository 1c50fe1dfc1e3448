// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/logger"
	"github.com/MKhiriev/go-mathkids/internal/mock"
	"github.com/MKhiriev/go-mathkids/internal/service"
	"github.com/MKhiriev/go-mathkids/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Metrics fake
// ─────────────────────────────────────────────

// fakeCollector records every observation for assertions.
type fakeCollector struct {
	mu             sync.Mutex
	logins         []string
	resetRequests  int
	passwordResets []string
	statuses       []int
	latencies      int
}

func (f *fakeCollector) RecordLogin(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, outcome)
}

func (f *fakeCollector) RecordResetRequest() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetRequests++
}

func (f *fakeCollector) RecordPasswordReset(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passwordResets = append(f.passwordResets, outcome)
}

func (f *fakeCollector) RecordTokensSwept(int64, int64) {}

func (f *fakeCollector) RecordHTTPStatus(statusCode int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, statusCode)
}

func (f *fakeCollector) RecordRequestLatency(time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latencies++
}

// ─────────────────────────────────────────────
// Handler fixture
// ─────────────────────────────────────────────

type testMocks struct {
	auth    *mock.MockAuthService
	reset   *mock.MockPasswordResetService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
	metrics *fakeCollector
}

const testRememberTTL = 30 * 24 * time.Hour

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment:   config.EnvDevelopment,
			RememberMeTTL: testRememberTTL,
		},
	}
}

// newTestHandler builds a Handler over gomock services. opts may adjust the
// configuration before the handler is created.
func newTestHandler(t *testing.T, opts ...func(*config.StructuredConfig)) (*Handler, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		reset:   mock.NewMockPasswordResetService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		metrics: &fakeCollector{},
	}

	cfg := testConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	services := &service.Services{
		AuthService:          m.auth,
		PasswordResetService: m.reset,
		AppInfoService:       m.appInfo,
		HealthService:        m.health,
	}

	h := NewHandler(services, cfg, m.metrics, nil, logger.Nop())
	t.Cleanup(h.Close)

	return h, m
}

// jsonBody serialises v into a request body.
func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// decodeMessage reads the {"message"} body of rec.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

// findCookie returns the cookie called name set on rec, or nil.
func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var (
	testUserIdentity = models.Identity{
		UserID: 7,
		Email:  "parent@example.com",
		Name:   "Maria",
		Kind:   models.IdentityKindUser,
	}
	testAdminIdentity = models.Identity{
		Email: "adm@email.com",
		Name:  "Administrador",
		Kind:  models.IdentityKindAdmin,
	}
)
