// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes passwords and token values with bcrypt and
// generates opaque random tokens.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns secrets into one-way digests and checks them.
// It is used for account passwords as well as for persistent and reset
// token values, none of which are stored in plaintext.
type PasswordHasher interface {
	// Hash returns the adaptive digest of plaintext.
	// Returns [ErrEmptyPassword] for an empty input and
	// [ErrPasswordTooLong] when plaintext exceeds [MaxPasswordBytes].
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// never matches.
	Verify(plaintext, digest string) bool

	// VerifyDummy performs a comparison against a fixed digest that never
	// matches, so that a lookup miss costs as much as a wrong password.
	VerifyDummy(plaintext string)
}

// TokenGenerator produces opaque high-entropy token values.
type TokenGenerator interface {
	// Generate returns a new random token encoded as lowercase hex.
	Generate() (string, error)
}
