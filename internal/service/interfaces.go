package service

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates accounts of the key blob service. It only ever
// sees auth hashes, salts and wrapped keys.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Params(ctx context.Context, login string) (models.KeyParams, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// KeyService serves the wrapped master key and the recovery blob of the
// authenticated account.
type KeyService interface {
	GetKeyParams(ctx context.Context, userID int64) (models.KeyParams, error)
	GetWrappedMasterKey(ctx context.Context, userID int64) (models.WrappedMasterKey, error)
	RotateMasterKey(ctx context.Context, userID int64, rotation models.MasterKeyRotation) error

	// GetRecoveryKey returns a nil RecoveryBlob when none is stored.
	GetRecoveryKey(ctx context.Context, userID int64) (models.RecoveryKey, error)
	SaveRecoveryKey(ctx context.Context, userID int64, key models.RecoveryKey) error
	DeleteRecoveryKey(ctx context.Context, userID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
