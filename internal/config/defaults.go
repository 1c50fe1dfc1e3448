// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to every field left empty by env, flags and JSON.
const (
	DefaultHTTPAddress         = "0.0.0.0:5000"
	DefaultTokenIssuer         = "mathkids-api"
	DefaultSessionTTL          = time.Hour
	DefaultRememberMeTTL       = 30 * 24 * time.Hour
	DefaultResetTTLProduction  = 15 * time.Minute
	DefaultResetTTLDevelopment = 60 * time.Minute
	DefaultAdminEmail          = "adm@email.com"
	DefaultAdminPassword       = "123456"
	DefaultQueryTimeout        = 5 * time.Second
	DefaultMaxOpenConns        = 10
	DefaultConnectTimeout      = 10 * time.Second
	DefaultRequestTimeout      = 30 * time.Second
	DefaultLoginRatePerMinute  = 20
	DefaultTokenRatePerMinute  = 60
	DefaultMailTimeout         = 10 * time.Second
	DefaultMailFromName        = "MathKids"
	DefaultMailFromEmail       = "noreply@mathkids.app"
	DefaultTokenSweepInterval  = time.Hour
	DefaultDBRetryInterval     = 30 * time.Second
	DefaultVersion             = "1.0.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:         EnvDevelopment,
			LogLevel:            "debug",
			TokenIssuer:         DefaultTokenIssuer,
			SessionTTL:          DefaultSessionTTL,
			RememberMeTTL:       DefaultRememberMeTTL,
			ResetTTLProduction:  DefaultResetTTLProduction,
			ResetTTLDevelopment: DefaultResetTTLDevelopment,
			BcryptCost:          bcrypt.DefaultCost,
			AdminEmail:          DefaultAdminEmail,
			AdminPassword:       DefaultAdminPassword,
			Version:             DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				QueryTimeout:   DefaultQueryTimeout,
				MaxOpenConns:   DefaultMaxOpenConns,
				ConnectTimeout: DefaultConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			LoginRatePerMinute: DefaultLoginRatePerMinute,
			TokenRatePerMinute: DefaultTokenRatePerMinute,
		},
		Mail: Mail{
			Provider:  MailProviderLog,
			FromEmail: DefaultMailFromEmail,
			FromName:  DefaultMailFromName,
			Timeout:   DefaultMailTimeout,
		},
		Workers: Workers{
			TokenSweepInterval:    DefaultTokenSweepInterval,
			DatabaseRetryInterval: DefaultDBRetryInterval,
		},
	}
}
