// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mathkids API handlers, services and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password is wrong.
	MsgInvalidCredentials = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgDatabaseUnavailable is returned while the database cannot be
	// reached. Only the administrator can log in during that time.
	MsgDatabaseUnavailable = "database temporarily unavailable, only the administrator can log in"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer session token
	// cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRememberTokenInvalid is returned by the remember-me verification
	// when no valid persistent token was presented.
	MsgRememberTokenInvalid = "invalid or expired remember-me token"

	// MsgResetTokenInvalid is returned when a password reset token is
	// unknown, expired or already used.
	MsgResetTokenInvalid = "invalid or expired reset token"

	// MsgAdminResetForbidden is returned when a password reset targets the
	// administrator account.
	MsgAdminResetForbidden = "the administrator password cannot be reset"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email is already registered"

	// MsgMissingAuthorizationHeader is returned when a protected endpoint is
	// called without a bearer token.
	MsgMissingAuthorizationHeader = "authorization header is required"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests, try again later"

	// MsgMethodNotAllowed is returned when a route is called with an
	// unsupported HTTP method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"
)

// Success messages.
const (
	MsgUserRegistered   = "user registered successfully"
	MsgLoginSucceeded   = "login successful"
	MsgAutoLogin        = "automatic login successful"
	MsgLoggedOut        = "logout successful"
	MsgPasswordChanged  = "password changed successfully"
	MsgCurrentUser      = "authenticated"
	MsgResetRequested   = "If this email is registered, you will receive instructions to reset your password."
	MsgServiceName      = "MathKids API"
	MsgDatabaseOK       = "OK"
	MsgDatabaseError    = "ERROR"
	MsgDatabaseUp       = "connected"
	MsgDatabaseDown     = "disconnected"
	MsgDatabaseNotSetUp = "not configured"

	MsgEmailUnhealthy      = "UNHEALTHY"
	MsgEmailServiceEnabled = "enabled"
	MsgEmailUnavailable    = "email provider is not reachable"
)
