// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var allowedBackends = map[string]struct{}{
	"":               {},
	"memory":         {},
	"keychain":       {},
	"wincred":        {},
	"secret-service": {},
	"kwallet":        {},
	"pass":           {},
	"keyctl":         {},
	"file":           {},
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, ok := allowedBackends[cfg.SecureStore.Backend]; !ok {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSecureStoreConfigs, cfg.SecureStore.Backend)
	}
	if cfg.SecureStore.Backend == "file" && (cfg.SecureStore.FileDir == "" || cfg.SecureStore.FilePassword == "") {
		return fmt.Errorf("%w: file backend needs a directory and a password", ErrInvalidSecureStoreConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.PasswordHashKey == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
