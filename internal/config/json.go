// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted by
// the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Environment         string   `json:"environment"`
		LogLevel            string   `json:"log_level"`
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		SessionTTL          Duration `json:"session_ttl"`
		RememberMeTTL       Duration `json:"remember_me_ttl"`
		ResetTTLProduction  Duration `json:"reset_ttl_production"`
		ResetTTLDevelopment Duration `json:"reset_ttl_development"`
		BcryptCost          int      `json:"bcrypt_cost"`
		AdminEmail          string   `json:"admin_email"`
		AdminPassword       string   `json:"admin_password"`
		FrontendURL         string   `json:"frontend_url"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string   `json:"dsn"`
			QueryTimeout Duration `json:"query_timeout"`
			MaxOpenConns int      `json:"max_open_conns"`

			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		AllowedOrigins     []string `json:"allowed_origins"`
		LoginRatePerMinute int      `json:"login_rate_per_minute"`
		TokenRatePerMinute int      `json:"token_rate_per_minute"`
	} `json:"server,omitempty"`

	Mail struct {
		Provider  string   `json:"provider"`
		APIURL    string   `json:"api_url"`
		APIToken  string   `json:"api_token"`
		FromEmail string   `json:"from_email"`
		FromName  string   `json:"from_name"`
		Timeout   Duration `json:"timeout"`
	} `json:"mail,omitempty"`

	Workers struct {
		TokenSweepInterval    Duration `json:"token_sweep_interval"`
		DatabaseRetryInterval Duration `json:"database_retry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment:         jsonCfg.App.Environment,
			LogLevel:            jsonCfg.App.LogLevel,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			SessionTTL:          time.Duration(jsonCfg.App.SessionTTL),
			RememberMeTTL:       time.Duration(jsonCfg.App.RememberMeTTL),
			ResetTTLProduction:  time.Duration(jsonCfg.App.ResetTTLProduction),
			ResetTTLDevelopment: time.Duration(jsonCfg.App.ResetTTLDevelopment),
			BcryptCost:          jsonCfg.App.BcryptCost,
			AdminEmail:          jsonCfg.App.AdminEmail,
			AdminPassword:       jsonCfg.App.AdminPassword,
			FrontendURL:         jsonCfg.App.FrontendURL,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				QueryTimeout: time.Duration(jsonCfg.Storage.DB.QueryTimeout),
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,

				ConnectTimeout: time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins:     jsonCfg.Server.AllowedOrigins,
			LoginRatePerMinute: jsonCfg.Server.LoginRatePerMinute,
			TokenRatePerMinute: jsonCfg.Server.TokenRatePerMinute,
		},
		Mail: Mail{
			Provider:  jsonCfg.Mail.Provider,
			APIURL:    jsonCfg.Mail.APIURL,
			APIToken:  jsonCfg.Mail.APIToken,
			FromEmail: jsonCfg.Mail.FromEmail,
			FromName:  jsonCfg.Mail.FromName,
			Timeout:   time.Duration(jsonCfg.Mail.Timeout),
		},
		Workers: Workers{
			TokenSweepInterval:    time.Duration(jsonCfg.Workers.TokenSweepInterval),
			DatabaseRetryInterval: time.Duration(jsonCfg.Workers.DatabaseRetryInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
