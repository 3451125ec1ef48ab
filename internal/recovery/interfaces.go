package recovery

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/recovery_mock.go -package=mock

// BlobStore keeps the recovery wrap of the master key on the server.
// adapter.ServerAdapter implements it. GetRecoveryKey returns a nil
// RecoveryBlob, not an error, when the account has none.
type BlobStore interface {
	GetRecoveryKey(ctx context.Context) (models.RecoveryKey, error)
	PutRecoveryKey(ctx context.Context, key models.RecoveryKey) error
}

// KeyHolder is the part of keystore.KeyStore the flows need.
type KeyHolder interface {
	WithKey(fn func(crypto.EncryptionKey) error) error
	Install(ctx context.Context, masterKey crypto.EncryptionKey) error
	SetHasRecoveryKey(ctx context.Context, has bool)
}
