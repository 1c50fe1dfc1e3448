// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnknownMailProvider = errors.New("unknown mail provider")
	ErrInvalidMailEndpoint = errors.New("invalid mail api url")
	ErrEmptyRecipient      = errors.New("email recipient is empty")
	ErrRenderingTemplate   = errors.New("error rendering email template")
	ErrSendingEmail        = errors.New("error sending email")
	ErrProviderUnreachable = errors.New("mail provider is unreachable")

	ErrBadRequest          = errors.New("mail provider rejected the request")
	ErrUnauthorized        = errors.New("mail provider unauthorized")
	ErrForbidden           = errors.New("mail provider forbidden")
	ErrRateLimited         = errors.New("mail provider rate limit exceeded")
	ErrInternalServerError = errors.New("mail provider internal error")
	ErrBadGateway          = errors.New("mail provider unavailable")
)
