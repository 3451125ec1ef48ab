// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when a ciphertext cannot be opened:
	// wrong key, tampered payload, malformed encoding or unknown version.
	// It is the only signal that separates a wrong password or recovery
	// phrase from an infrastructure failure.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedVersion is returned together with ErrDecryptionFailed
	// when the version tag of a ciphertext or wrapped key is not known.
	ErrUnsupportedVersion = errors.New("unsupported ciphertext version")

	// ErrAlreadyEncrypted is returned by Encrypt when the plaintext is
	// already a ciphertext.
	ErrAlreadyEncrypted = errors.New("value is already encrypted")

	// ErrInvalidKeyLength is returned when a key is not 32 bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidMnemonic is returned when a recovery phrase does not have
	// exactly 24 words after normalization.
	ErrInvalidMnemonic = errors.New("invalid recovery mnemonic")

	// ErrEmptySecret is returned by DeriveKey for an empty secret or salt.
	ErrEmptySecret = errors.New("empty secret or salt")
)
