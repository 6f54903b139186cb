// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied for any field no configuration source supplied.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "sqlite://users.db"
	DefaultTokenIssuer    = "user-directory"
	DefaultTokenDuration  = time.Hour
	DefaultLogLevel       = "info"
	DefaultClientBaseURL  = "http://localhost:8080"
	DefaultClientTimeout  = 10 * time.Second
	DefaultClientRetries  = 3
)

// StructuredConfig is the top-level configuration container for the user
// directory service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token signing parameters for the login endpoint.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings for the outbound API client binary.
	Client Client `envPrefix:"CLIENT_"`

	// Log holds logging settings shared by every binary.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds JWT token lifecycle settings.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance
	// (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme: "postgres://..." opens PostgreSQL
	// via pgx, "sqlite://path" opens an embedded SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	// An empty list allows every origin, matching a development setup.
	// Env: SERVER_CORS_ORIGINS (comma-separated)
	CORSAllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Client holds settings for the command-line API client.
type Client struct {
	// BaseURL is the server root the client talks to
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a failed request is retried with
	// exponential backoff before giving up.
	// Env: CLIENT_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum emitted log level
	// ("trace", "debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			BaseURL:        DefaultClientBaseURL,
			RequestTimeout: DefaultClientTimeout,
			RetryCount:     DefaultClientRetries,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
