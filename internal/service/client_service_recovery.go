package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/models"
)

type clientRecoveryService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChainService
	keys     *keystore.KeyStore
	session  *session

	logger *logger.Logger
}

func newClientRecoveryService(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, keys *keystore.KeyStore, sess *session, log *logger.Logger) *clientRecoveryService {
	return &clientRecoveryService{
		adapter:  serverAdapter,
		keychain: keychain,
		keys:     keys,
		session:  sess,
		logger:   log,
	}
}

// NewSetup implements [ClientRecoveryService].
func (r *clientRecoveryService) NewSetup() *recovery.SetupFlow {
	return recovery.NewSetupFlow(r.keychain, r.keys, r.adapter, r.logger)
}

// NewRestore implements [ClientRecoveryService].
func (r *clientRecoveryService) NewRestore() *recovery.RestoreFlow {
	return recovery.NewRestoreFlow(r.keychain, r.keys, r.adapter, r.logger)
}

// RefreshStatus implements [ClientRecoveryService].
func (r *clientRecoveryService) RefreshStatus(ctx context.Context) (bool, error) {
	key, err := r.adapter.GetRecoveryKey(ctx)
	if err != nil {
		return r.keys.HasRecoveryKey(), mapAdapterError(err)
	}

	has := key.RecoveryBlob != nil && *key.RecoveryBlob != ""
	r.keys.SetHasRecoveryKey(ctx, has)
	r.session.update(ctx, func(p *models.Profile) { p.HasRecoveryKey = has })
	return has, nil
}

// Remove implements [ClientRecoveryService].
func (r *clientRecoveryService) Remove(ctx context.Context) error {
	if err := r.adapter.DeleteRecoveryKey(ctx); err != nil {
		return fmt.Errorf("delete recovery key: %w", mapAdapterError(err))
	}

	r.keys.SetHasRecoveryKey(ctx, false)
	r.session.update(ctx, func(p *models.Profile) { p.HasRecoveryKey = false })
	r.logger.Info().Msg("recovery key removed")
	return nil
}
