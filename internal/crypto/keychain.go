// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-zk-vault/models"
	"github.com/rcrowley/go-metrics"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of every symmetric key (AES-256).
	KeySize = 32
	// SaltSize is the length of an account salt.
	SaltSize = 16
	// KDFIterationsV1 is the PBKDF2 iteration count bound to KDF version 1.
	// Changing it breaks every existing wrapped key.
	KDFIterationsV1 = 210_000

	authHashContext = "go-zk-vault/auth/v1"
)

// EncryptionKey is raw symmetric key material.
type EncryptionKey []byte

// Salt is a random, non-secret KDF salt.
type Salt []byte

// Wipe overwrites the key in place.
func (k EncryptionKey) Wipe() {
	clear(k)
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	iterations int
	random     io.Reader
	kdfTimer   metrics.Timer
}

// Option tunes a [KeyChainService].
type Option func(*keyChainService)

// WithKDFIterations overrides the PBKDF2 iteration count. Only tests and
// future KDF versions should use it.
func WithKDFIterations(n int) Option {
	return func(k *keyChainService) {
		if n > 0 {
			k.iterations = n
		}
	}
}

// WithRandom replaces the CSPRNG. Used by tests to simulate RNG failures.
func WithRandom(r io.Reader) Option {
	return func(k *keyChainService) {
		k.random = r
	}
}

// NewKeyChainService constructs a [KeyChainService] using PBKDF2-HMAC-SHA256
// with [KDFIterationsV1] iterations and AES-256-GCM.
func NewKeyChainService(opts ...Option) KeyChainService {
	k := &keyChainService{
		iterations: KDFIterationsV1,
		random:     rand.Reader,
		kdfTimer:   metrics.GetOrRegisterTimer("crypto.kdf.derive", nil),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(secret string, salt Salt) (EncryptionKey, error) {
	if secret == "" || len(salt) == 0 {
		return nil, ErrEmptySecret
	}

	var key []byte
	k.kdfTimer.Time(func() {
		key = pbkdf2.Key([]byte(secret), salt, k.iterations, KeySize, sha256.New)
	})
	return key, nil
}

// GenerateMasterKey implements [KeyChainService].
func (k *keyChainService) GenerateMasterKey() (EncryptionKey, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(k.random, key); err != nil {
		return nil, fmt.Errorf("generate master key: %w", err)
	}
	return key, nil
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() (Salt, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Encrypt implements [KeyChainService]. Each call draws a new 12-byte IV,
// so concurrent callers never share a nonce.
func (k *keyChainService) Encrypt(plaintext string, key EncryptionKey) (string, error) {
	if IsEncrypted(plaintext) {
		return "", ErrAlreadyEncrypted
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(k.random, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	return envelope{version: currentVersion, iv: iv, payload: sealed}.String(), nil
}

// Decrypt implements [KeyChainService]. The version tag is checked before
// any cryptographic work.
func (k *keyChainService) Decrypt(ciphertext string, key EncryptionKey) (string, error) {
	env, err := parseEnvelope(ciphertext)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, env.iv, env.payload, nil)
	if err != nil {
		return "", fmt.Errorf("%w: open payload: %v", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

// IsEncrypted implements [KeyChainService].
func (k *keyChainService) IsEncrypted(value string) bool {
	return IsEncrypted(value)
}

// WrapMasterKey implements [KeyChainService]. The key is base64 encoded
// before sealing so the wrap reuses the field ciphertext format.
func (k *keyChainService) WrapMasterKey(masterKey, wrappingKey EncryptionKey) (models.WrappedMasterKey, error) {
	if len(masterKey) != KeySize {
		return models.WrappedMasterKey{}, fmt.Errorf("wrap master key: %w", ErrInvalidKeyLength)
	}

	sealed, err := k.Encrypt(base64.StdEncoding.EncodeToString(masterKey), wrappingKey)
	if err != nil {
		return models.WrappedMasterKey{}, fmt.Errorf("wrap master key: %w", err)
	}

	return models.WrappedMasterKey{EncryptedKey: sealed, Version: models.WrapVersionV1}, nil
}

// UnwrapMasterKey implements [KeyChainService].
func (k *keyChainService) UnwrapMasterKey(wrapped models.WrappedMasterKey, wrappingKey EncryptionKey) (EncryptionKey, error) {
	if wrapped.Version != models.WrapVersionV1 {
		return nil, fmt.Errorf("%w: %w: wrap version %d", ErrDecryptionFailed, ErrUnsupportedVersion, wrapped.Version)
	}

	encoded, err := k.Decrypt(wrapped.EncryptedKey, wrappingKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap master key: %w", err)
	}

	masterKey, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(masterKey) != KeySize {
		return nil, fmt.Errorf("%w: unwrapped value is not a master key", ErrDecryptionFailed)
	}
	return masterKey, nil
}

// AuthHash implements [KeyChainService]. It is SHA-256(wrappingKey ‖ context);
// the context string keeps the hash apart from the key itself.
func (k *keyChainService) AuthHash(wrappingKey EncryptionKey) []byte {
	h := sha256.New()
	h.Write(wrappingKey)
	h.Write([]byte(authHashContext))
	return h.Sum(nil)
}

func newGCM(key EncryptionKey) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
