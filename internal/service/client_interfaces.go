package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService owns the account lifecycle on the device: it derives
// the password wrapping key, talks to the server and installs the master
// key into the key store.
type ClientAuthService interface {
	// Register creates the account and its master key. Weak passwords are
	// rejected with ErrWeakPassword before anything is derived.
	Register(ctx context.Context, login, name, password string) error

	// Login authenticates and unwraps the master key. If the server
	// accepted the password but the wrap does not open, the error wraps
	// keystore.ErrMasterKeyUnwrap and the session stays authenticated so
	// the user can restore from the recovery phrase.
	Login(ctx context.Context, login, password string) error

	// Unlock loads a master key persisted by an earlier session, without
	// network. It reports false when there is none.
	Unlock(ctx context.Context) (bool, error)

	// ChangePassword re-wraps the live master key under newPassword and
	// uploads the new wrap together with the old and new login proofs.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// RewrapAfterRecovery stores a fresh password wrap of the recovered
	// master key so the next login works without the phrase.
	RewrapAfterRecovery(ctx context.Context, password string) error

	// Logout clears the key store and forgets the session token.
	Logout(ctx context.Context) error

	// Profile returns the cached profile of the last login.
	Profile(ctx context.Context) (models.Profile, error)
}

// ClientRecoveryService creates recovery flows bound to the live session.
type ClientRecoveryService interface {
	NewSetup() *recovery.SetupFlow
	NewRestore() *recovery.RestoreFlow

	// RefreshStatus asks the server whether a recovery blob exists and
	// updates the local flag.
	RefreshStatus(ctx context.Context) (bool, error)

	// Remove deletes the recovery blob and clears the local flag.
	Remove(ctx context.Context) error
}

// ClientResourceService performs application API calls. Registered fields
// are encrypted on the way out and decrypted on the way back.
type ClientResourceService interface {
	Do(ctx context.Context, method, path string, body, result any) error
}
