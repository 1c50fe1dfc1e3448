// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-mathkids/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// UserSubject renders a database user ID as a "sub" claim.
func UserSubject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): a user ID or [models.AdminTokenSubject]
//   - Audience  (aud): [models.AudienceSession] or [models.AudienceRememberMe]
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("mathkids-api", utils.UserSubject(42), models.AudienceSession, time.Hour, "secret")
func GenerateJWTToken(issuer, subject, audience string, tokenDuration time.Duration, signKey string) (*models.Token, error) {
	if issuer == "" || subject == "" || audience == "" || tokenDuration <= 0 || signKey == "" {
		return nil, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return nil, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	result := &models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}
	if subject != models.AdminTokenSubject {
		result.UserID, _ = strconv.ParseInt(subject, 10, 64)
	}

	return result, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) claim check
//   - Subject (sub) presence; a numeric subject is parsed into UserID,
//     [models.AdminTokenSubject] is accepted as is
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "mathkids-api", models.AudienceSession)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string) (*models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	parsed.Token = token
	parsed.SignedString = tokenString

	if parsed.Subject == "" {
		return nil, errors.New("empty subject error")
	}
	if parsed.IsAdmin() {
		return parsed, nil
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return nil, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	parsed.UserID = userID

	return parsed, nil
}
