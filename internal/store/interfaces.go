package store

import (
	"context"

	"github.com/MKhiriev/go-zk-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the key blob service.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken login yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin yields ErrNoUserWasFound for an unknown login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateMasterKey replaces the password wrap and the login proof in
	// one statement.
	UpdateMasterKey(ctx context.Context, userID int64, authHash, encryptionSalt string, wrapped models.WrappedMasterKey) error
}

// RecoveryKeyRepository persists recovery blobs, one per account.
type RecoveryKeyRepository interface {
	// GetRecoveryKey yields ErrRecoveryKeyNotFound when none is stored.
	GetRecoveryKey(ctx context.Context, userID int64) (models.RecoveryKeyRecord, error)
	// SaveRecoveryKey inserts or replaces the blob of record.UserID.
	SaveRecoveryKey(ctx context.Context, record models.RecoveryKeyRecord) error
	// DeleteRecoveryKey is idempotent.
	DeleteRecoveryKey(ctx context.Context, userID int64) error
}
