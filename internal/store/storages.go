package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
)

// Storages groups the server repositories over one PostgreSQL database.
type Storages struct {
	UserRepository        UserRepository
	RecoveryKeyRepository RecoveryKeyRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		RecoveryKeyRepository: NewRecoveryKeyRepository(db, logger),
		db:                    db,
	}
}

// Close closes the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
