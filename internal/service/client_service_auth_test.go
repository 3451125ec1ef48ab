package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/mock"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
)

const (
	strongPassword = "orbit-Lantern-57-quietly-Brass"
	otherPassword  = "Velvet#tundra-harbor-2291"
)

type clientDeps struct {
	keychain crypto.KeyChainService
	adapter  *mock.MockServerAdapter
	profiles *mock.MockProfileRepository
	store    *securestore.MemoryStore
	keys     *keystore.KeyStore
}

func newClientDeps(t *testing.T) clientDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := clientDeps{
		keychain: newTestKeychain(),
		adapter:  mock.NewMockServerAdapter(ctrl),
		profiles: mock.NewMockProfileRepository(ctrl),
		store:    securestore.NewMemoryStore(),
	}
	d.keys = keystore.New(d.store, d.keychain, d.adapter, logger.Nop())
	d.profiles.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return d
}

func (d clientDeps) services() *ClientServices {
	return NewClientServices(d.adapter, d.keychain, d.keys, d.profiles, logger.Nop())
}

func (d clientDeps) liveKey(t *testing.T) crypto.EncryptionKey {
	t.Helper()
	key, err := d.keys.EncryptionKey()
	require.NoError(t, err)
	return key
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestClientRegister_Success(t *testing.T) {
	d := newClientDeps(t)
	var sent models.User

	d.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			sent = u
			return models.User{UserID: 1, Login: u.Login}, nil
		})

	err := d.services().AuthService.Register(context.Background(), " alice ", "Alice", strongPassword)
	require.NoError(t, err)

	assert.Equal(t, "alice", sent.Login)
	require.NotNil(t, sent.WrappedMasterKey)
	assert.True(t, crypto.IsEncrypted(sent.WrappedMasterKey.EncryptedKey))

	// what the server got opens with the password and nothing else
	salt, err := base64.StdEncoding.DecodeString(sent.EncryptionSalt)
	require.NoError(t, err)
	wk, err := d.keychain.DeriveKey(strongPassword, salt)
	require.NoError(t, err)
	mk, err := d.keychain.UnwrapMasterKey(*sent.WrappedMasterKey, wk)
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString(d.keychain.AuthHash(wk)), sent.AuthHash)
	assert.Equal(t, keystore.StateReady, d.keys.State())
	assert.Equal(t, mk, d.liveKey(t))
	assert.False(t, d.keys.HasRecoveryKey())
	assert.NotContains(t, sent.AuthHash, strongPassword)
}

func TestClientRegister_WeakPassword(t *testing.T) {
	d := newClientDeps(t)
	svc := d.services().AuthService

	for _, pw := range []string{"password", "alice2024", "qwerty123"} {
		err := svc.Register(context.Background(), "alice", "Alice", pw)
		assert.ErrorIs(t, err, ErrWeakPassword, pw)
	}
	assert.Equal(t, keystore.StateUninitialized, d.keys.State())
}

func TestClientRegister_MissingFields(t *testing.T) {
	d := newClientDeps(t)

	err := d.services().AuthService.Register(context.Background(), "", "Alice", strongPassword)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientRegister_LoginTaken(t *testing.T) {
	d := newClientDeps(t)

	d.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("register: %w", adapter.ErrConflict))

	err := d.services().AuthService.Register(context.Background(), "alice", "Alice", strongPassword)

	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
	assert.NotEqual(t, keystore.StateReady, d.keys.State())
	assert.Zero(t, d.store.Len())
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func expectParams(d clientDeps, acc account) {
	d.adapter.EXPECT().RequestParams(gomock.Any(), "alice").
		Return(models.KeyParams{Login: "alice", EncryptionSalt: acc.b64Salt(), KDFVersion: models.KDFVersionV1}, nil)
}

func TestClientLogin_Success(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	blob := "v1:blob"

	expectParams(d, acc)
	d.adapter.EXPECT().Login(gomock.Any(), models.User{Login: "alice", AuthHash: acc.authHash}).
		Return(models.User{UserID: 1, Login: "alice", Name: "Alice", WrappedMasterKey: &acc.wrapped}, nil)
	d.adapter.EXPECT().GetWrappedMasterKey(gomock.Any()).Return(acc.wrapped, nil)
	d.adapter.EXPECT().GetRecoveryKey(gomock.Any()).Return(models.RecoveryKey{RecoveryBlob: &blob}, nil)

	svc := d.services().AuthService
	require.NoError(t, svc.Login(context.Background(), "alice", strongPassword))

	assert.Equal(t, acc.masterKey, d.liveKey(t))
	assert.True(t, d.keys.HasRecoveryKey())

	profile, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.True(t, profile.HasRecoveryKey)
}

func TestClientLogin_WrongPassword(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)

	expectParams(d, acc)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, fmt.Errorf("login: %w", adapter.ErrUnauthorized))

	err := d.services().AuthService.Login(context.Background(), "alice", otherPassword)

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, keystore.StateUninitialized, d.keys.State())
}

func TestClientLogin_WrapDoesNotOpen(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	foreign := newAccount(t, d.keychain, otherPassword)

	expectParams(d, acc)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Login: "alice"}, nil)
	d.adapter.EXPECT().GetWrappedMasterKey(gomock.Any()).Return(foreign.wrapped, nil)

	err := d.services().AuthService.Login(context.Background(), "alice", strongPassword)

	assert.ErrorIs(t, err, keystore.ErrMasterKeyUnwrap)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Equal(t, keystore.StateCleared, d.keys.State())
}

func TestClientLogin_UnsupportedKDF(t *testing.T) {
	d := newClientDeps(t)

	d.adapter.EXPECT().RequestParams(gomock.Any(), "alice").
		Return(models.KeyParams{EncryptionSalt: "c2FsdHNhbHRzYWx0c2FsdA==", KDFVersion: 2}, nil)

	err := d.services().AuthService.Login(context.Background(), "alice", strongPassword)

	assert.ErrorIs(t, err, ErrUnsupportedKDF)
}

func TestClientLogin_ServerDown(t *testing.T) {
	d := newClientDeps(t)

	d.adapter.EXPECT().RequestParams(gomock.Any(), "alice").
		Return(models.KeyParams{}, &net.OpError{Op: "dial", Net: "tcp", Err: fmt.Errorf("connection refused")})

	err := d.services().AuthService.Login(context.Background(), "alice", strongPassword)

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientLogin_RecoveryStatusFailureIsNotFatal(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	d.keys.SetHasRecoveryKey(context.Background(), true)

	expectParams(d, acc)
	d.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{Login: "alice"}, nil)
	d.adapter.EXPECT().GetWrappedMasterKey(gomock.Any()).Return(acc.wrapped, nil)
	d.adapter.EXPECT().GetRecoveryKey(gomock.Any()).Return(models.RecoveryKey{}, adapter.ErrBadGateway)

	require.NoError(t, d.services().AuthService.Login(context.Background(), "alice", strongPassword))
	assert.True(t, d.keys.HasRecoveryKey(), "last known flag is kept")
}

// ─────────────────────────────────────────────
// Unlock / Logout
// ─────────────────────────────────────────────

func TestClientUnlock(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))

	// a fresh process on the same device
	keys := keystore.New(d.store, d.keychain, d.adapter, logger.Nop())
	d.profiles.EXPECT().LastProfile(gomock.Any()).Return(models.Profile{Login: "alice", Name: "Alice"}, nil)
	svc := NewClientServices(d.adapter, d.keychain, keys, d.profiles, logger.Nop()).AuthService

	ok, err := svc.Unlock(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	profile, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Login)
}

func TestClientUnlock_NothingStored(t *testing.T) {
	d := newClientDeps(t)

	ok, err := d.services().AuthService.Unlock(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientLogout(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))

	d.adapter.EXPECT().SetToken("")

	require.NoError(t, d.services().AuthService.Logout(context.Background()))

	assert.Equal(t, keystore.StateCleared, d.keys.State())
	assert.Zero(t, d.store.Len())
	_, err := d.keys.EncryptionKey()
	assert.ErrorIs(t, err, keystore.ErrNoKeyAvailable)
}

// ─────────────────────────────────────────────
// ChangePassword
// ─────────────────────────────────────────────

func TestClientChangePassword_Success(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))

	var rotation models.MasterKeyRotation
	d.adapter.EXPECT().GetKeyParams(gomock.Any()).Return(models.KeyParams{EncryptionSalt: acc.b64Salt(), KDFVersion: 1}, nil)
	d.adapter.EXPECT().GetWrappedMasterKey(gomock.Any()).Return(acc.wrapped, nil)
	d.adapter.EXPECT().RotateMasterKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.MasterKeyRotation) error {
			rotation = r
			return nil
		})

	require.NoError(t, d.services().AuthService.ChangePassword(context.Background(), strongPassword, otherPassword))

	assert.Equal(t, acc.authHash, rotation.AuthHash)
	assert.NotEqual(t, acc.authHash, rotation.NewAuthHash)
	assert.NotEqual(t, acc.b64Salt(), rotation.EncryptionSalt)

	salt, err := base64.StdEncoding.DecodeString(rotation.EncryptionSalt)
	require.NoError(t, err)
	wk, err := d.keychain.DeriveKey(otherPassword, salt)
	require.NoError(t, err)
	mk, err := d.keychain.UnwrapMasterKey(rotation.WrappedMasterKey, wk)
	require.NoError(t, err)
	assert.Equal(t, acc.masterKey, mk, "the master key itself never changes")
	assert.Equal(t, base64.StdEncoding.EncodeToString(d.keychain.AuthHash(wk)), rotation.NewAuthHash)
}

func TestClientChangePassword_WrongOldPassword(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))

	d.adapter.EXPECT().GetKeyParams(gomock.Any()).Return(models.KeyParams{EncryptionSalt: acc.b64Salt()}, nil)
	d.adapter.EXPECT().GetWrappedMasterKey(gomock.Any()).Return(acc.wrapped, nil)

	err := d.services().AuthService.ChangePassword(context.Background(), "Not-the-0ld-one-at-all", otherPassword)

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientChangePassword_Guards(t *testing.T) {
	d := newClientDeps(t)
	svc := d.services().AuthService

	assert.ErrorIs(t, svc.ChangePassword(context.Background(), strongPassword, otherPassword), keystore.ErrNoKeyAvailable)
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), strongPassword, strongPassword), ErrPasswordUnchanged)
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), "", otherPassword), ErrInvalidDataProvided)

	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), strongPassword, "12345678"), ErrWeakPassword)
}

// ─────────────────────────────────────────────
// RewrapAfterRecovery
// ─────────────────────────────────────────────

func TestClientRewrapAfterRecovery(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	recovered, err := d.keychain.GenerateMasterKey()
	require.NoError(t, err)
	require.NoError(t, d.keys.Install(context.Background(), recovered))

	var rotation models.MasterKeyRotation
	d.adapter.EXPECT().GetKeyParams(gomock.Any()).Return(models.KeyParams{EncryptionSalt: acc.b64Salt()}, nil)
	d.adapter.EXPECT().RotateMasterKey(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.MasterKeyRotation) error {
			rotation = r
			return nil
		})

	require.NoError(t, d.services().AuthService.RewrapAfterRecovery(context.Background(), strongPassword))

	assert.Equal(t, acc.authHash, rotation.AuthHash)
	assert.Equal(t, rotation.AuthHash, rotation.NewAuthHash)
	assert.Equal(t, acc.b64Salt(), rotation.EncryptionSalt)

	mk, err := d.keychain.UnwrapMasterKey(rotation.WrappedMasterKey, acc.wrappingKey)
	require.NoError(t, err)
	assert.Equal(t, recovered, mk)
}

func TestClientRewrapAfterRecovery_Rejected(t *testing.T) {
	d := newClientDeps(t)
	acc := newAccount(t, d.keychain, strongPassword)
	require.NoError(t, d.keys.Install(context.Background(), acc.masterKey))

	d.adapter.EXPECT().GetKeyParams(gomock.Any()).Return(models.KeyParams{EncryptionSalt: acc.b64Salt()}, nil)
	d.adapter.EXPECT().RotateMasterKey(gomock.Any(), gomock.Any()).Return(adapter.ErrUnauthorized)

	err := d.services().AuthService.RewrapAfterRecovery(context.Background(), otherPassword)

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientRewrapAfterRecovery_NoKey(t *testing.T) {
	d := newClientDeps(t)

	err := d.services().AuthService.RewrapAfterRecovery(context.Background(), strongPassword)

	assert.ErrorIs(t, err, keystore.ErrNoKeyAvailable)
}

func TestCheckPasswordStrength_UserInputsCount(t *testing.T) {
	require.NoError(t, checkPasswordStrength(strongPassword, "alice", ""))
	assert.ErrorIs(t, checkPasswordStrength("mariabellanova", "mariabellanova"), ErrWeakPassword)
}
