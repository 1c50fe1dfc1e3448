// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-mathkids/internal/config"
	"github.com/MKhiriev/go-mathkids/internal/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testHasher is a real bcrypt hasher at the cheapest cost.
var testHasher = crypto.NewBcryptHasher(bcrypt.MinCost)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// Raw tokens shaped like the output of crypto.HexTokenGenerator.
var (
	rightToken = strings.Repeat("a1", 32)
	otherToken = strings.Repeat("b2", 32)
	wrongToken = strings.Repeat("c3", 32)
	resetToken = strings.Repeat("d4", 32)
)

func fixedClock() time.Time { return testNow }

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	digest, err := testHasher.Hash(plaintext)
	require.NoError(t, err)
	return digest
}

func testAppConfig() config.App {
	return config.App{
		Environment:         config.EnvDevelopment,
		TokenSignKey:        "test-sign-key",
		TokenIssuer:         "mathkids-test",
		SessionTTL:          time.Hour,
		RememberMeTTL:       30 * 24 * time.Hour,
		ResetTTLProduction:  15 * time.Minute,
		ResetTTLDevelopment: time.Hour,
		BcryptCost:          bcrypt.MinCost,
		AdminEmail:          "adm@email.com",
		AdminPassword:       "123456",
		Version:             "1.0.0",
	}
}
