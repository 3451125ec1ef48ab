package keystore

import "errors"

var (
	// ErrNoKeyAvailable is returned when the key store is not Ready.
	ErrNoKeyAvailable = errors.New("no encryption key available")

	// ErrMasterKeyUnwrap is returned by Initialize when the server accepted
	// the login but the wrapped master key does not open with the
	// password-derived key. The caller should offer recovery, not a retry.
	// It always wraps crypto.ErrDecryptionFailed as well.
	ErrMasterKeyUnwrap = errors.New("master key cannot be unwrapped with this password")

	// ErrKeyVerification is returned when the key read back from the
	// secure store differs from the key just written.
	ErrKeyVerification = errors.New("secure store returned a different key")

	// ErrCorruptStoredKey is returned when the persisted slot does not hold
	// a valid master key.
	ErrCorruptStoredKey = errors.New("stored master key is corrupt")
)
