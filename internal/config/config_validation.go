// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// Mail providers accepted by [Mail.Provider].
const (
	MailProviderHTTP = "http"
	MailProviderLog  = "log"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty database DSN is allowed: the server then runs in admin-only mode.
// Production needs a frontend URL so reset links are absolute.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionTTL <= 0 || cfg.App.RememberMeTTL <= 0 || cfg.App.ResetTTL() <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.App.AdminEmail == "" || cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: admin credentials are required", ErrInvalidAppConfigs)
	}

	if cfg.App.IsProduction() && cfg.App.FrontendURL == "" {
		return fmt.Errorf("%w: frontend url is required in production", ErrInvalidAppConfigs)
	}

	if cfg.App.FrontendURL != "" {
		if _, err := url.ParseRequestURI(cfg.App.FrontendURL); err != nil {
			return fmt.Errorf("%w: invalid frontend url: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.DB.QueryTimeout <= 0 {
		return fmt.Errorf("%w: query timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	switch cfg.Mail.Provider {
	case MailProviderLog:
	case MailProviderHTTP:
		if cfg.Mail.APIURL == "" || cfg.Mail.FromEmail == "" {
			return fmt.Errorf("%w: http provider needs api url and sender", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidMailConfigs, cfg.Mail.Provider)
	}

	if cfg.Workers.TokenSweepInterval <= 0 || cfg.Workers.DatabaseRetryInterval <= 0 {
		return fmt.Errorf("%w: worker intervals must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
