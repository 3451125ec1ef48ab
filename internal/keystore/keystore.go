// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keystore owns the live master key of the process.
//
// A [KeyStore] has exactly one writer at a time (login, restore, logout) and
// any number of lock-free readers (the encryption interceptor). A writer
// persists the key to the secure store and reads it back before the state
// becomes Ready, so a reader never observes a half-installed key.
package keystore

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
)

// Secure store slots. The suffix versions the value layout.
const (
	SlotMasterKey    = "master-key.v1"
	SlotRecoveryFlag = "recovery-flag.v1"
)

// KeyStore holds the master key inside a memguard enclave.
type KeyStore struct {
	mu sync.Mutex

	state       atomic.Int32
	key         atomic.Pointer[memguard.Enclave]
	hasRecovery atomic.Bool
	persisted   atomic.Bool

	store    securestore.SecureStore
	keychain crypto.KeyChainService
	source   KeySource
	logger   *logger.Logger
}

// New returns a KeyStore in the Uninitialized state.
func New(store securestore.SecureStore, keychain crypto.KeyChainService, source KeySource, log *logger.Logger) *KeyStore {
	return &KeyStore{
		store:    store,
		keychain: keychain,
		source:   source,
		logger:   log.WithComponent("keystore"),
	}
}

// State returns the current lifecycle state.
func (k *KeyStore) State() State {
	return State(k.state.Load())
}

// Persisted reports whether the live key is also in the secure store.
// It is false when the platform store was unavailable and the key lives in
// memory only; the user then has to log in with the password every session.
func (k *KeyStore) Persisted() bool {
	return k.persisted.Load()
}

// Initialize derives the password wrapping key from the account salt,
// fetches and unwraps the server-held master key and installs it.
//
// An unwrap failure is reported as ErrMasterKeyUnwrap (together with
// crypto.ErrDecryptionFailed). The server wrap no longer matches the
// password, so a master key persisted earlier is deleted from the secure
// store as well; the recovery flag slot is kept. Any other failure leaves
// the secure store untouched.
func (k *KeyStore) Initialize(ctx context.Context, password string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.begin()

	params, err := k.source.GetKeyParams(ctx)
	if err != nil {
		k.abort()
		return false, fmt.Errorf("fetch key params: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil {
		k.abort()
		return false, fmt.Errorf("decode account salt: %w", err)
	}

	wrappingKey, err := k.keychain.DeriveKey(password, salt)
	if err != nil {
		k.abort()
		return false, fmt.Errorf("derive wrapping key: %w", err)
	}
	defer wrappingKey.Wipe()

	return k.initializeWithWrappingKey(ctx, wrappingKey)
}

// InitializeWithWrappingKey is Initialize for callers that already derived
// the password wrapping key, such as the login flow which needs it for the
// auth hash anyway.
func (k *KeyStore) InitializeWithWrappingKey(ctx context.Context, wrappingKey crypto.EncryptionKey) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.begin()
	return k.initializeWithWrappingKey(ctx, wrappingKey)
}

func (k *KeyStore) initializeWithWrappingKey(ctx context.Context, wrappingKey crypto.EncryptionKey) (bool, error) {
	wrapped, err := k.source.GetWrappedMasterKey(ctx)
	if err != nil {
		k.abort()
		return false, fmt.Errorf("fetch wrapped master key: %w", err)
	}

	masterKey, err := k.keychain.UnwrapMasterKey(wrapped, wrappingKey)
	if err != nil {
		k.abort()
		k.logger.Warn().Err(err).Msg("master key unwrap failed")
		if derr := k.store.DeleteItem(ctx, SlotMasterKey); derr != nil {
			k.logger.Warn().Err(derr).Msg("stale master key could not be removed")
		}
		return false, fmt.Errorf("%w: %w", ErrMasterKeyUnwrap, err)
	}
	defer masterKey.Wipe()

	if err := k.install(ctx, masterKey); err != nil {
		k.abort()
		return false, err
	}
	return true, nil
}

// InitializeFromSecureStore loads a previously persisted master key without
// any network call. It returns false when no key is stored. A denied or
// missing platform store also yields false, with the cause in err.
func (k *KeyStore) InitializeFromSecureStore(ctx context.Context) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.begin()

	encoded, err := k.store.GetItem(ctx, SlotMasterKey)
	if errors.Is(err, securestore.ErrItemNotFound) {
		k.abort()
		return false, nil
	}
	if err != nil {
		k.abort()
		k.logger.Warn().Err(err).Msg("secure store unavailable, falling back to password login")
		return false, fmt.Errorf("read master key: %w", err)
	}

	masterKey, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(masterKey) != crypto.KeySize {
		k.abort()
		return false, ErrCorruptStoredKey
	}
	defer clear(masterKey)

	k.hasRecovery.Store(k.readRecoveryFlag(ctx))
	k.publish(masterKey, true)
	k.logger.Info().Msg("master key loaded from secure store")
	return true, nil
}

// Install makes masterKey the live key. It is the single write path used by
// registration, login and recovery restore: the key is written to the secure
// store and read back before the state flips to Ready.
//
// If the platform store is unavailable the key is kept in memory only and
// Persisted reports false. A read-back mismatch is a hard failure.
func (k *KeyStore) Install(ctx context.Context, masterKey crypto.EncryptionKey) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.begin()
	if err := k.install(ctx, masterKey); err != nil {
		k.abort()
		return err
	}
	return nil
}

func (k *KeyStore) install(ctx context.Context, masterKey crypto.EncryptionKey) error {
	if len(masterKey) != crypto.KeySize {
		return fmt.Errorf("install master key: %w", crypto.ErrInvalidKeyLength)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(masterKey)

	err := k.store.SetItem(ctx, SlotMasterKey, encoded)
	if errors.Is(err, securestore.ErrSecureStoreUnavailable) {
		k.logger.Warn().Err(err).Msg("secure store unavailable, master key kept in memory only")
		k.publish(masterKey, false)
		return nil
	}
	if err != nil {
		return fmt.Errorf("persist master key: %w", err)
	}

	stored, err := k.store.GetItem(ctx, SlotMasterKey)
	if err != nil {
		_ = k.store.DeleteItem(context.WithoutCancel(ctx), SlotMasterKey)
		return fmt.Errorf("verify persisted master key: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(encoded)) != 1 {
		_ = k.store.DeleteItem(context.WithoutCancel(ctx), SlotMasterKey)
		return ErrKeyVerification
	}

	k.publish(masterKey, true)
	k.logger.Info().Msg("master key installed")
	return nil
}

// EncryptionKey returns a copy of the live master key, or ErrNoKeyAvailable
// unless the store is Ready. It never blocks on I/O. The caller should Wipe
// the copy when done.
func (k *KeyStore) EncryptionKey() (crypto.EncryptionKey, error) {
	var out crypto.EncryptionKey
	err := k.WithKey(func(key crypto.EncryptionKey) error {
		out = append(crypto.EncryptionKey(nil), key...)
		return nil
	})
	return out, err
}

// WithKey calls fn with the live master key. The slice is only valid during
// the call and is destroyed afterwards.
func (k *KeyStore) WithKey(fn func(crypto.EncryptionKey) error) error {
	if k.State() != StateReady {
		return ErrNoKeyAvailable
	}
	enclave := k.key.Load()
	if enclave == nil {
		return ErrNoKeyAvailable
	}

	buf, err := enclave.Open()
	if err != nil {
		return fmt.Errorf("%w: open enclave: %v", ErrNoKeyAvailable, err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Clear drops the live key and wipes both slots of the secure store.
// It is called on logout and on an unrecoverable unwrap failure.
func (k *KeyStore) Clear(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.state.Store(int32(StateCleared))
	k.key.Store(nil)
	k.hasRecovery.Store(false)
	k.persisted.Store(false)

	err := errors.Join(
		k.store.DeleteItem(ctx, SlotMasterKey),
		k.store.DeleteItem(ctx, SlotRecoveryFlag),
	)
	if err != nil {
		k.logger.Warn().Err(err).Msg("secure store could not be wiped")
		return fmt.Errorf("clear secure store: %w", err)
	}

	k.logger.Info().Msg("key store cleared")
	return nil
}

// SetHasRecoveryKey records whether a recovery blob exists on the server.
// The flag is not secret; failing to persist it is only logged.
func (k *KeyStore) SetHasRecoveryKey(ctx context.Context, has bool) {
	k.hasRecovery.Store(has)

	value := "0"
	if has {
		value = "1"
	}
	if err := k.store.SetItem(ctx, SlotRecoveryFlag, value); err != nil {
		k.logger.Warn().Err(err).Msg("recovery flag not persisted")
	}
}

// HasRecoveryKey reports the last known recovery blob state.
func (k *KeyStore) HasRecoveryKey() bool {
	return k.hasRecovery.Load()
}

func (k *KeyStore) readRecoveryFlag(ctx context.Context) bool {
	v, err := k.store.GetItem(ctx, SlotRecoveryFlag)
	return err == nil && v == "1"
}

// begin hides any previous key from readers for the duration of a write.
func (k *KeyStore) begin() {
	k.state.Store(int32(StateInitializing))
	k.key.Store(nil)
}

func (k *KeyStore) abort() {
	k.key.Store(nil)
	k.persisted.Store(false)
	k.state.Store(int32(StateUninitialized))
}

// publish stores the key before flipping the state, so a reader that sees
// Ready always finds the enclave.
func (k *KeyStore) publish(masterKey []byte, persisted bool) {
	// NewEnclave wipes its argument
	k.key.Store(memguard.NewEnclave(append([]byte(nil), masterKey...)))
	k.persisted.Store(persisted)
	k.state.Store(int32(StateReady))
}
