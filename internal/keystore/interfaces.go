package keystore

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_source_mock.go -package=mock

// KeySource fetches the public key parameters and the password-wrapped
// master key of the signed-in account. The HTTP adapter implements it.
type KeySource interface {
	GetKeyParams(ctx context.Context) (models.KeyParams, error)
	GetWrappedMasterKey(ctx context.Context) (models.WrappedMasterKey, error)
}
