// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// OpaqueTokenBytes is the entropy of a generated token (256 bits).
const OpaqueTokenBytes = 32

// HexTokenGenerator implements [TokenGenerator] on top of crypto/rand.
type HexTokenGenerator struct{}

// NewHexTokenGenerator returns a generator of 64 character hex tokens.
func NewHexTokenGenerator() *HexTokenGenerator {
	return &HexTokenGenerator{}
}

func (HexTokenGenerator) Generate() (string, error) {
	return GenerateOpaqueToken()
}

// GenerateOpaqueToken returns [OpaqueTokenBytes] random bytes hex encoded.
func GenerateOpaqueToken() (string, error) {
	b := make([]byte, OpaqueTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}
	return hex.EncodeToString(b), nil
}

// IsOpaqueToken reports whether s has the shape of a generated token:
// [OpaqueTokenBytes]*2 lowercase hex characters.
func IsOpaqueToken(s string) bool {
	if len(s) != OpaqueTokenBytes*2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
