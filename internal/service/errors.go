package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	// ErrUnsupportedKeyVersion is returned for a wrapped key or recovery
	// blob whose scheme version this server does not know.
	ErrUnsupportedKeyVersion = errors.New("unsupported key version")

	// ErrNotCiphertext is returned when uploaded key material is not
	// structurally a ciphertext. The server never stores plaintext keys.
	ErrNotCiphertext = errors.New("key material is not a ciphertext")
)

// client side
var (
	ErrWeakPassword      = errors.New("password is too weak")
	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrUnsupportedKDF    = errors.New("unsupported key derivation version")
	ErrPasswordUnchanged = errors.New("new password equals the old one")
	ErrNotFound          = errors.New("resource not found")
)
