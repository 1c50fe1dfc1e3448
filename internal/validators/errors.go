// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrEmptyBirthDate   = errors.New("birth date is required")
	ErrInvalidBirthDate = errors.New("birth date must be formatted as YYYY-MM-DD")
	ErrFutureBirthDate  = errors.New("birth date cannot be in the future")
	ErrTermsNotAccepted = errors.New("terms of use must be accepted")
	ErrEmptyToken       = errors.New("token is required")
)
