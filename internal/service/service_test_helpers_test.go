package service

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/models"
)

const testHashKey = "test-hash-key"

func testServerApp() config.ServerApp {
	return config.ServerApp{
		PasswordHashKey: testHashKey,
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "go-zk-vault-test",
		TokenDuration:   time.Hour,
		Version:         "1.0.0",
	}
}

func newTestKeychain() crypto.KeyChainService {
	return crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
}

// account is a complete client-side key set for one password.
type account struct {
	password    string
	salt        crypto.Salt
	masterKey   crypto.EncryptionKey
	wrappingKey crypto.EncryptionKey
	wrapped     models.WrappedMasterKey
	authHash    string
}

func (a account) b64Salt() string {
	return base64.StdEncoding.EncodeToString(a.salt)
}

func newAccount(t *testing.T, kc crypto.KeyChainService, password string) account {
	t.Helper()

	salt, err := kc.GenerateSalt()
	require.NoError(t, err)
	mk, err := kc.GenerateMasterKey()
	require.NoError(t, err)
	wk, err := kc.DeriveKey(password, salt)
	require.NoError(t, err)
	wrapped, err := kc.WrapMasterKey(mk, wk)
	require.NoError(t, err)

	return account{
		password:    password,
		salt:        salt,
		masterKey:   mk,
		wrappingKey: wk,
		wrapped:     wrapped,
		authHash:    base64.StdEncoding.EncodeToString(kc.AuthHash(wk)),
	}
}
