package securestore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secure_store_mock.go -package=mock

// SecureStore is a device-local key-value store backed by OS-level
// protected storage (keychain, credential manager, secret service).
//
// GetItem returns ErrItemNotFound for a missing key. Every other failure,
// including a user declining access, is reported as ErrSecureStoreUnavailable.
// DeleteItem on a missing key is not an error.
type SecureStore interface {
	SetItem(ctx context.Context, key, value string) error
	GetItem(ctx context.Context, key string) (string, error)
	DeleteItem(ctx context.Context, key string) error
}
