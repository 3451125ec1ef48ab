package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/interceptor"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/registry"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/tui"
	"github.com/MKhiriev/go-zk-vault/models"
)

// App is the client process: key store, encrypting transport, services
// and the terminal UI.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// keyProviderFunc adapts a function to [interceptor.KeyProvider].
type keyProviderFunc func() (crypto.EncryptionKey, error)

func (f keyProviderFunc) EncryptionKey() (crypto.EncryptionKey, error) {
	return f()
}

// NewApp wires the client from cfg.
//
// The key store reads key material through the adapter and the adapter's
// transport reads the key from the key store, so the interceptor gets the
// key store late, through a closure.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	secure, err := securestore.New(cfg.SecureStore, log)
	if err != nil {
		log.Warn().Err(err).Msg("secure store unavailable, falling back to memory")
		secure = securestore.NewMemoryStore()
	}

	keychain := crypto.NewKeyChainService()

	var keys *keystore.KeyStore
	ic := interceptor.New(
		registry.Default(),
		keyProviderFunc(func() (crypto.EncryptionKey, error) { return keys.EncryptionKey() }),
		keychain,
		interceptor.PolicyFromConfig(cfg.Interceptor),
		log,
	)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, ic, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	keys = keystore.New(secure, keychain, serverAdapter, log)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(serverAdapter, keychain, keys, storages.ProfileRepository, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run tries to unlock a key persisted by an earlier session and then hands
// over to the UI. A damaged stored key is not fatal: the user logs in again.
func (a *App) Run(ctx context.Context) error {
	unlocked, err := a.services.AuthService.Unlock(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("unlock from secure store failed")
		unlocked = false
	}

	err = a.ui.Run(ctx, unlocked)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// Close closes the local database. The master key stays in the secure
// store for the next start; the in-memory copy goes with memguard.Purge.
func (a *App) Close() error {
	return a.storages.Close()
}
