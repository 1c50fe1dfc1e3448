// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOpaqueToken(t *testing.T) {
	seen := make(map[string]struct{}, 100)

	for i := 0; i < 100; i++ {
		token, err := GenerateOpaqueToken()
		require.NoError(t, err)

		assert.Len(t, token, OpaqueTokenBytes*2)
		raw, err := hex.DecodeString(token)
		require.NoError(t, err)
		assert.Len(t, raw, OpaqueTokenBytes)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated")
		seen[token] = struct{}{}
	}
}

func TestHexTokenGenerator(t *testing.T) {
	var g TokenGenerator = NewHexTokenGenerator()

	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestIsOpaqueToken(t *testing.T) {
	generated, err := GenerateOpaqueToken()
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "generated", token: generated, want: true},
		{name: "empty", token: "", want: false},
		{name: "too short", token: strings.Repeat("a", 63), want: false},
		{name: "too long", token: strings.Repeat("a", 65), want: false},
		{name: "uppercase hex", token: strings.Repeat("A", 64), want: false},
		{name: "non hex", token: strings.Repeat("g", 64), want: false},
		{name: "junk", token: "not-a-token", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOpaqueToken(tt.token))
		})
	}
}
