package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

type recoveryKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRecoveryKeyRepository(db *DB, logger *logger.Logger) RecoveryKeyRepository {
	logger.Debug().Msg("creating recovery key repository")
	return &recoveryKeyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recoveryKeyRepository) GetRecoveryKey(ctx context.Context, userID int64) (models.RecoveryKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecoveryKeyQuery(userID)
	if err != nil {
		return models.RecoveryKeyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.RecoveryKeyRecord
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&record.UserID, &record.Blob, &record.Version, &record.UpdatedAt)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.RecoveryKeyRecord{}, ErrRecoveryKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*recoveryKeyRepository.GetRecoveryKey").Msg("error reading recovery key")
		return models.RecoveryKeyRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

func (r *recoveryKeyRepository) SaveRecoveryKey(ctx context.Context, record models.RecoveryKeyRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveRecoveryKeyQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*recoveryKeyRepository.SaveRecoveryKey").Msg("error saving recovery key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *recoveryKeyRepository) DeleteRecoveryKey(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecoveryKeyQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*recoveryKeyRepository.DeleteRecoveryKey").Msg("error deleting recovery key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
