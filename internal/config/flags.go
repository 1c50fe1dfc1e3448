// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env application environment (development|production)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-session-ttl session token duration (e.g., "1h", "30m")
//	-remember-me-ttl persistent token duration (e.g., "720h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-admin-email fixed administrator email
//	-admin-password fixed administrator password
//	-frontend-url base url for password reset links
//	-sweep-interval expired token sweep interval
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var environment string
	var tokenSignKey string
	var tokenIssuer string
	var sessionTTL time.Duration
	var rememberMeTTL time.Duration
	var requestTimeout time.Duration
	var adminEmail string
	var adminPassword string
	var frontendURL string
	var sweepInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Application environment (development|production)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session token duration (e.g., 1h, 30m)")
	fs.DurationVar(&rememberMeTTL, "remember-me-ttl", 0, "Remember me token duration (e.g., 720h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adminEmail, "admin-email", "", "Administrator email")
	fs.StringVar(&adminPassword, "admin-password", "", "Administrator password")
	fs.StringVar(&frontendURL, "frontend-url", "", "Frontend base URL for reset links")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Expired token sweep interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment:   environment,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			SessionTTL:    sessionTTL,
			RememberMeTTL: rememberMeTTL,
			AdminEmail:    adminEmail,
			AdminPassword: adminPassword,
			FrontendURL:   frontendURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			TokenSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
