// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the key blob server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The HTTP/REST implementation
// ([NewHTTPServerAdapter]) runs every request through the field encryption
// interceptor, so resource payloads leave the process already encrypted.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the key blob
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token logs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the account. The user carries only public or
	// wrapped values: salt, auth hash and the password-wrapped master key.
	// On success the returned bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// RequestParams fetches the public key-derivation parameters stored for
	// login. They are needed to derive the wrapping key before the auth hash
	// can be computed for Login.
	RequestParams(ctx context.Context, login string) (models.KeyParams, error)

	// Login authenticates with the pre-computed auth hash. On success the
	// bearer token is stored and the account record, including the
	// password-wrapped master key, is returned.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetKeyParams returns the key-derivation parameters of the
	// authenticated account.
	GetKeyParams(ctx context.Context) (models.KeyParams, error)

	// GetWrappedMasterKey returns the password-wrapped master key of the
	// authenticated account.
	GetWrappedMasterKey(ctx context.Context) (models.WrappedMasterKey, error)

	// RotateMasterKey replaces the password wrap after a password change.
	RotateMasterKey(ctx context.Context, rotation models.MasterKeyRotation) error

	// GetRecoveryKey returns the recovery blob. An account without one
	// yields a RecoveryKey with a nil RecoveryBlob and no error.
	GetRecoveryKey(ctx context.Context) (models.RecoveryKey, error)

	// PutRecoveryKey uploads (or replaces) the recovery blob.
	PutRecoveryKey(ctx context.Context, key models.RecoveryKey) error

	// DeleteRecoveryKey removes the recovery blob.
	DeleteRecoveryKey(ctx context.Context) error

	// Do performs an authenticated JSON call against a resource endpoint.
	// body and result may be nil. Registered fields are encrypted and
	// decrypted on the way.
	Do(ctx context.Context, method, path string, body, result any) error
}
