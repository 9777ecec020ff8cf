// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the API instance itself.
	App App `envPrefix:"APP_"`

	// Server holds settings of the local HTTP emulator.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the policy used for automatic preflight responses.
	CORS CORS `envPrefix:"CORS_"`

	// Auth holds Authorization header parsing settings.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by extension (.yaml/.yml, anything else is JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds API-level settings.
type App struct {
	// Version is reported by the health route.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Base is the path prefix every route is registered under (e.g. "/v1").
	// Env: APP_BASE
	Base string `env:"BASE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LowercaseHeaders makes envelopes carry lower-cased header names.
	// Env: APP_LOWERCASE_HEADERS
	LowercaseHeaders bool `env:"LOWERCASE_HEADERS"`

	// TokenSignKey is the HMAC key used to verify Bearer JWTs on the
	// whoami route. Empty disables the route.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of Bearer JWTs.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Server holds network and timeout settings for the local emulator.
type Server struct {
	// HTTPAddress is the TCP address the emulator listens on, in
	// "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single invocation (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// CORS configures automatic OPTIONS preflight responses. Empty string fields
// fall back to the response package defaults.
type CORS struct {
	// Enabled turns automatic preflight handling on.
	// Env: CORS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Env: CORS_ORIGIN
	Origin string `env:"ORIGIN"`

	// Env: CORS_METHODS
	Methods string `env:"METHODS"`

	// Env: CORS_HEADERS
	Headers string `env:"HEADERS"`

	// Env: CORS_EXPOSE_HEADERS
	ExposeHeaders string `env:"EXPOSE_HEADERS"`

	// MaxAge is written to Access-Control-Max-Age in whole seconds.
	// Env: CORS_MAX_AGE
	MaxAge time.Duration `env:"MAX_AGE"`

	// Env: CORS_CREDENTIALS
	Credentials bool `env:"CREDENTIALS"`
}

// Auth holds Authorization header parsing settings.
type Auth struct {
	// Schemes lists custom schemes recognized next to Basic, Bearer, Digest
	// and OAuth (e.g. "ApiKey,Token").
	// Env: AUTH_SCHEMES
	Schemes []string `env:"SCHEMES" envSeparator:","`
}

// Defaults applied before any other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}

// GetStructuredConfigFromEnv is GetStructuredConfig without command-line
// flags, for binaries that own their flag parsing. A non-empty filePath takes
// precedence over the CONFIG environment variable.
func GetStructuredConfigFromEnv(filePath string) (*StructuredConfig, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv()

	if filePath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filePath})
	}

	return b.withFile().build()
}
