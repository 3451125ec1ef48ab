package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLogin        = errors.New("invalid login")
	ErrInvalidAuthHash     = errors.New("auth hash is required")
	ErrInvalidSalt         = errors.New("malformed encryption salt")
	ErrMissingWrappedKey   = errors.New("wrapped master key is required")
	ErrEmptyRecoveryBlob   = errors.New("recovery blob is required")
	ErrVersionNotSpecified = errors.New("key version is not specified")
	ErrUnsupportedVersion  = errors.New("unsupported key version")
	ErrNotCiphertext       = errors.New("key material is not a ciphertext")
)
