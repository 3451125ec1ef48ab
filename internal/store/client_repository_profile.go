package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

// profileRepository is the SQLite-backed [ProfileRepository].
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// SaveProfile inserts or replaces the profile of profile.Login. A zero
// LastLoginAt is stored as now.
func (r *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	query, args, err := buildSaveProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*profileRepository.SaveProfile").Msg("error saving profile")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *profileRepository) GetProfile(ctx context.Context, login string) (models.Profile, error) {
	query, args, err := buildGetProfileQuery(login)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, query, args)
}

func (r *profileRepository) LastProfile(ctx context.Context) (models.Profile, error) {
	query, args, err := buildLastProfileQuery()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.queryProfile(ctx, query, args)
}

func (r *profileRepository) DeleteProfile(ctx context.Context, login string) error {
	query, args, err := buildDeleteProfileQuery(login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*profileRepository.DeleteProfile").Msg("error deleting profile")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *profileRepository) queryProfile(ctx context.Context, query string, args []any) (models.Profile, error) {
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*profileRepository.queryProfile").Msg("error reading profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return profile, nil
}
