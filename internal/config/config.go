// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// go-zk-vault client and the key blob server. It is populated by merging
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and key-derivation settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client profile cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the key blob service.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// SecureStore selects the OS keyring backend for the master key.
	SecureStore SecureStore `envPrefix:"SECURE_STORE_"`

	// Interceptor holds the field encryption policy.
	Interceptor Interceptor `envPrefix:"INTERCEPTOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashKey is the server-side HMAC key applied to client auth
	// hashes before they are stored.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies JWT session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB is the server PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Local is the client SQLite profile cache.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client-side database settings.
type Local struct {
	// DSN is the SQLite file path or URI.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds settings of the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the client's outbound transport.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the key blob server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// SecureStore selects where the client persists the master key.
type SecureStore struct {
	// ServiceName namespaces the items in the OS keyring.
	// Env: SECURE_STORE_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// Backend restricts the keyring to one backend ("keychain", "wincred",
	// "secret-service", "kwallet", "pass", "file") or selects "memory".
	// Empty lets the keyring pick the platform default.
	// Env: SECURE_STORE_BACKEND
	Backend string `env:"BACKEND"`

	// FileDir is the directory of the encrypted-file backend.
	// Env: SECURE_STORE_FILE_DIR
	FileDir string `env:"FILE_DIR"`

	// FilePassword unlocks the encrypted-file backend.
	// Env: SECURE_STORE_FILE_PASSWORD
	FilePassword string `env:"FILE_PASSWORD"`
}

// Interceptor holds the field encryption policy. Both flags weaken the
// zero-knowledge guarantee and default to off.
type Interceptor struct {
	// AllowPlaintextWithoutKey lets requests go out unencrypted when no
	// master key is available instead of failing them.
	// Env: INTERCEPTOR_ALLOW_PLAINTEXT_WITHOUT_KEY
	AllowPlaintextWithoutKey bool `env:"ALLOW_PLAINTEXT_WITHOUT_KEY"`

	// LegacyPlaintextFallback keeps plaintext values found in responses
	// for fields that should be encrypted.
	// Env: INTERCEPTOR_LEGACY_PLAINTEXT_FALLBACK
	LegacyPlaintextFallback bool `env:"LEGACY_PLAINTEXT_FALLBACK"`

	// UnreadablePlaceholder replaces fields that fail to decrypt.
	// Env: INTERCEPTOR_UNREADABLE_PLACEHOLDER
	UnreadablePlaceholder string `env:"UNREADABLE_PLACEHOLDER"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
