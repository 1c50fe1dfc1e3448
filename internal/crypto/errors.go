// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when an empty secret is hashed.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong is returned when a secret exceeds the 72 bytes
	// bcrypt takes into account.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrGeneratingToken is returned when the system random source fails.
	ErrGeneratingToken = errors.New("failed to generate random token")
)
