// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-mathkids/models"
)

const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldBirthDate     = "birthDate"
	FieldTermsAccepted = "termsAccepted"
	FieldToken         = "token"
	FieldNewPassword   = "newPassword"
)

// Password and name bounds. The password maximum is the number of bytes
// bcrypt takes into account.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
	MaxNameLength     = 255
)

// BirthDateLayout is the accepted birth date format.
const BirthDateLayout = time.DateOnly

// emailPattern accepts "something@something.tld" without whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims surrounding whitespace and lowercases email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseBirthDate parses a YYYY-MM-DD date in UTC.
func ParseBirthDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(BirthDateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidBirthDate, err)
	}
	return date, nil
}

// AuthValidator validates the bodies of the authentication endpoints.
type AuthValidator struct {
	now func() time.Time
}

// NewAuthValidator returns a [Validator] for [models.RegisterRequest],
// [models.LoginRequest], [models.ForgotPasswordRequest] and
// [models.ResetPasswordRequest].
func NewAuthValidator() Validator {
	return &AuthValidator{now: time.Now}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(ctx, value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPasswordRequest(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldBirthDate, FieldTermsAccepted}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = validateName(req.Name)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(req.Password)
		case FieldBirthDate:
			err = v.validateBirthDate(req.BirthDate)
		case FieldTermsAccepted:
			if !req.TermsAccepted {
				err = ErrTermsNotAccepted
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateLoginRequest only checks presence of the password: its length is
// a registration rule and must not leak through login errors.
func (v *AuthValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AuthValidator) validateForgotPasswordRequest(_ context.Context, req models.ForgotPasswordRequest, fields ...string) error {
	for _, field := range fields {
		if field != FieldEmail {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return validateEmail(req.Email)
}

func (v *AuthValidator) validateResetPasswordRequest(_ context.Context, req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldEmail, FieldNewPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldToken:
			if strings.TrimSpace(req.Token) == "" {
				err = ErrEmptyToken
			}
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldNewPassword:
			err = validatePassword(req.NewPassword)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func (v *AuthValidator) validateBirthDate(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyBirthDate
	}

	date, err := ParseBirthDate(value)
	if err != nil {
		return err
	}

	if date.After(v.now().UTC()) {
		return ErrFutureBirthDate
	}
	return nil
}
