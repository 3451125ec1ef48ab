package service

import (
	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

// ClientServices groups the client services. They share one session.
type ClientServices struct {
	AuthService     ClientAuthService
	RecoveryService ClientRecoveryService
	ResourceService ClientResourceService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, keys *keystore.KeyStore, profiles store.ProfileRepository, log *logger.Logger) *ClientServices {
	sess := newSession(profiles, log)

	return &ClientServices{
		AuthService:     newClientAuthService(serverAdapter, keychain, keys, profiles, sess, log),
		RecoveryService: newClientRecoveryService(serverAdapter, keychain, keys, sess, log.WithComponent("recovery")),
		ResourceService: &clientResourceService{adapter: serverAdapter, logger: log.WithComponent("resources")},
	}
}
