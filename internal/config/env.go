// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is read before the environment is parsed. Variables already
// present in the process environment are never overwritten by it.
const dotEnvFile = ".env"

// hostingEnv carries the unprefixed variables set by common PaaS hosts.
// They are consulted only when the prefixed variables are empty.
type hostingEnv struct {
	DatabaseURL     string `env:"DATABASE_URL"`
	NeonDatabaseURL string `env:"NEON_DATABASE_URL"`
	Port            string `env:"PORT"`
	FrontendURL     string `env:"FRONTEND_URL"`
	NodeEnv         string `env:"NODE_ENV"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return err
	}

	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var hosting hostingEnv
	if err := env.Parse(&hosting); err != nil {
		return fmt.Errorf("error getting hosting env configs: %w", err)
	}
	applyHostingEnv(cfg, hosting)

	return nil
}

func applyHostingEnv(cfg *StructuredConfig, hosting hostingEnv) {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = hosting.DatabaseURL
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = hosting.NeonDatabaseURL
	}
	if cfg.Server.HTTPAddress == "" && hosting.Port != "" {
		cfg.Server.HTTPAddress = net.JoinHostPort("0.0.0.0", hosting.Port)
	}
	if cfg.App.FrontendURL == "" {
		cfg.App.FrontendURL = hosting.FrontendURL
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = hosting.NodeEnv
	}
}

// loadDotEnv exports the variables of a dotenv file. A missing file is not
// an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading %s: %w", path, err)
}
