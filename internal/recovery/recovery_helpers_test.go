package recovery_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
	"github.com/MKhiriev/go-zk-vault/models"
)

// memBlobs stands in for the recovery-key endpoint.
type memBlobs struct {
	mu   sync.Mutex
	key  models.RecoveryKey
	puts int
}

func (m *memBlobs) GetRecoveryKey(context.Context) (models.RecoveryKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key, nil
}

func (m *memBlobs) PutRecoveryKey(_ context.Context, key models.RecoveryKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	m.puts++
	return nil
}

type device struct {
	store *securestore.MemoryStore
	keys  *keystore.KeyStore
}

func newKeychain() crypto.KeyChainService {
	return crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
}

func newDevice() device {
	store := securestore.NewMemoryStore()
	return device{store: store, keys: keystore.New(store, newKeychain(), nil, logger.Nop())}
}

// readyDevice returns a device holding a fresh master key.
func readyDevice(t *testing.T, kc crypto.KeyChainService) (device, crypto.EncryptionKey) {
	t.Helper()

	mk, err := kc.GenerateMasterKey()
	require.NoError(t, err)

	d := newDevice()
	require.NoError(t, d.keys.Install(context.Background(), mk))
	return d, mk
}
