package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
	"github.com/MKhiriev/go-zk-vault/models"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlCKey = tea.KeyMsg{Type: tea.KeyCtrlC}
	backKey  = tea.KeyMsg{Type: tea.KeyCtrlB}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd and returns its message, nil for a nil command.
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

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

func newTestKeychain() crypto.KeyChainService {
	return crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
}

func newTestKeyStore() *keystore.KeyStore {
	return keystore.New(securestore.NewMemoryStore(), newTestKeychain(), nil, logger.Nop())
}

// readyKeyStore returns a key store holding a fresh master key.
func readyKeyStore(t *testing.T) (*keystore.KeyStore, crypto.EncryptionKey) {
	t.Helper()

	mk, err := newTestKeychain().GenerateMasterKey()
	require.NoError(t, err)

	ks := newTestKeyStore()
	require.NoError(t, ks.Install(context.Background(), mk))
	return ks, mk
}

// recoveryBlob wraps masterKey under a fresh phrase the way setup does.
func recoveryBlob(t *testing.T, kc crypto.KeyChainService, masterKey crypto.EncryptionKey) (string, models.RecoveryKey) {
	t.Helper()

	phrase, err := kc.GenerateRecoveryMnemonic()
	require.NoError(t, err)

	wk, err := kc.DeriveKeyFromMnemonic(phrase)
	require.NoError(t, err)

	wrapped, err := kc.WrapMasterKey(masterKey, wk)
	require.NoError(t, err)

	blob := wrapped.EncryptedKey
	return phrase, models.RecoveryKey{RecoveryBlob: &blob, Version: wrapped.Version}
}
