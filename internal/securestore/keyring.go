// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package securestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
)

// KeyringStore is a [SecureStore] on top of the OS keyring.
type KeyringStore struct {
	ring   keyring.Keyring
	label  string
	logger *logger.Logger
}

// New opens the secure store selected by cfg. Backend "memory" returns a
// [MemoryStore]; anything else opens the OS keyring.
func New(cfg config.SecureStore, log *logger.Logger) (SecureStore, error) {
	if cfg.Backend == "memory" {
		log.Warn().Msg("secure store backend is in-memory, master key will not survive restarts")
		return NewMemoryStore(), nil
	}
	return OpenKeyring(cfg, log)
}

// OpenKeyring opens the keyring for cfg.ServiceName. An empty cfg.Backend
// lets the library pick the platform default.
func OpenKeyring(cfg config.SecureStore, log *logger.Logger) (*KeyringStore, error) {
	kc := keyring.Config{
		ServiceName:              cfg.ServiceName,
		KeychainName:             cfg.ServiceName,
		KeychainTrustApplication: true,
		KWalletAppID:             cfg.ServiceName,
		KWalletFolder:            cfg.ServiceName,
		LibSecretCollectionName:  cfg.ServiceName,
		WinCredPrefix:            cfg.ServiceName,
		PassPrefix:               cfg.ServiceName,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.FilePassword),
	}
	if cfg.Backend != "" {
		kc.AllowedBackends = []keyring.BackendType{keyring.BackendType(cfg.Backend)}
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("%w: open keyring: %v", ErrSecureStoreUnavailable, err)
	}

	return NewKeyringStore(ring, cfg.ServiceName, log), nil
}

// NewKeyringStore wraps an already opened keyring.
func NewKeyringStore(ring keyring.Keyring, label string, log *logger.Logger) *KeyringStore {
	return &KeyringStore{
		ring:   ring,
		label:  label,
		logger: log.WithComponent("securestore"),
	}
}

// SetItem implements [SecureStore].
func (s *KeyringStore) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.ring.Set(keyring.Item{
		Key:         key,
		Data:        []byte(value),
		Label:       s.label + " " + key,
		Description: "go-zk-vault secret",
	})
	if err != nil {
		s.logger.Error().Err(err).Str("slot", key).Msg("keyring write failed")
		return fmt.Errorf("%w: set %s: %v", ErrSecureStoreUnavailable, key, err)
	}
	return nil
}

// GetItem implements [SecureStore].
func (s *KeyringStore) GetItem(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	item, err := s.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrItemNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("slot", key).Msg("keyring read failed")
		return "", fmt.Errorf("%w: get %s: %v", ErrSecureStoreUnavailable, key, err)
	}
	return string(item.Data), nil
}

// DeleteItem implements [SecureStore].
func (s *KeyringStore) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.ring.Remove(key)
	if err == nil || errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	s.logger.Error().Err(err).Str("slot", key).Msg("keyring delete failed")
	return fmt.Errorf("%w: delete %s: %v", ErrSecureStoreUnavailable, key, err)
}
