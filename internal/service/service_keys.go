// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/models"
)

// keyService serves opaque key blobs. It validates their shape and never
// holds anything that could open them.
type keyService struct {
	users        store.UserRepository
	recoveryKeys store.RecoveryKeyRepository
	hashKey      string

	logger *logger.Logger
}

func NewKeyService(users store.UserRepository, recoveryKeys store.RecoveryKeyRepository, cfg config.ServerApp, logger *logger.Logger) KeyService {
	return &keyService{
		users:        users,
		recoveryKeys: recoveryKeys,
		hashKey:      cfg.PasswordHashKey,
		logger:       logger,
	}
}

func (s *keyService) GetKeyParams(ctx context.Context, userID int64) (models.KeyParams, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.KeyParams{}, fmt.Errorf("find user: %w", err)
	}
	return models.KeyParams{Login: user.Login, EncryptionSalt: user.EncryptionSalt, KDFVersion: models.KDFVersionV1}, nil
}

func (s *keyService) GetWrappedMasterKey(ctx context.Context, userID int64) (models.WrappedMasterKey, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.WrappedMasterKey{}, fmt.Errorf("find user: %w", err)
	}
	if user.WrappedMasterKey == nil {
		return models.WrappedMasterKey{}, store.ErrNoUserWasFound
	}
	return *user.WrappedMasterKey, nil
}

// RotateMasterKey replaces the password wrap. rotation.AuthHash must match
// the stored proof; NewAuthHash replaces it in the same statement.
func (s *keyService) RotateMasterKey(ctx context.Context, userID int64, rotation models.MasterKeyRotation) error {
	log := logger.FromContext(ctx)

	if err := validate(ctx, rotation); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid key rotation")
		return err
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if !utils.EqualHash(user.AuthHash, utils.HashString(rotation.AuthHash, s.hashKey)) {
		log.Info().Int64("user_id", userID).Msg("key rotation with wrong password")
		return ErrWrongPassword
	}

	err = s.users.UpdateMasterKey(ctx, userID, utils.HashString(rotation.NewAuthHash, s.hashKey), rotation.EncryptionSalt, rotation.WrappedMasterKey)
	if err != nil {
		return fmt.Errorf("update master key: %w", err)
	}
	return nil
}

// GetRecoveryKey returns RecoveryKey{RecoveryBlob: nil} when none is stored.
func (s *keyService) GetRecoveryKey(ctx context.Context, userID int64) (models.RecoveryKey, error) {
	record, err := s.recoveryKeys.GetRecoveryKey(ctx, userID)
	if errors.Is(err, store.ErrRecoveryKeyNotFound) {
		return models.RecoveryKey{}, nil
	}
	if err != nil {
		return models.RecoveryKey{}, fmt.Errorf("get recovery key: %w", err)
	}
	return models.RecoveryKey{RecoveryBlob: &record.Blob, Version: record.Version}, nil
}

// SaveRecoveryKey stores or replaces the recovery blob. A missing version
// means v1.
func (s *keyService) SaveRecoveryKey(ctx context.Context, userID int64, key models.RecoveryKey) error {
	if err := validate(ctx, key); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("user_id", userID).Msg("invalid recovery key")
		return err
	}

	version := key.Version
	if version == 0 {
		version = models.WrapVersionV1
	}

	err := s.recoveryKeys.SaveRecoveryKey(ctx, models.RecoveryKeyRecord{UserID: userID, Blob: *key.RecoveryBlob, Version: version})
	if err != nil {
		return fmt.Errorf("save recovery key: %w", err)
	}
	return nil
}

func (s *keyService) DeleteRecoveryKey(ctx context.Context, userID int64) error {
	if err := s.recoveryKeys.DeleteRecoveryKey(ctx, userID); err != nil {
		return fmt.Errorf("delete recovery key: %w", err)
	}
	return nil
}
