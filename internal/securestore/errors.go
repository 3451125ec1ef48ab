package securestore

import "errors"

var (
	// ErrItemNotFound is returned when the requested slot is empty.
	ErrItemNotFound = errors.New("secure store item not found")

	// ErrSecureStoreUnavailable is returned when the platform store cannot
	// be opened, is locked, or denied access.
	ErrSecureStoreUnavailable = errors.New("secure store unavailable")
)
