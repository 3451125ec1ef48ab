package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/models"
)

func testUser() models.User {
	return models.User{
		Login:            "john",
		Name:             "John",
		AuthHash:         "a1b2c3",
		EncryptionSalt:   "c2FsdHNhbHRzYWx0c2FsdA==",
		WrappedMasterKey: &models.WrappedMasterKey{EncryptedKey: "v1:aXY=:Y3Q=", Version: 1},
	}
}

func userRows(id int64, u models.User, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, u.Login, u.Name, u.AuthHash, u.EncryptionSalt, u.WrappedMasterKey.EncryptedKey, u.WrappedMasterKey.Version, createdAt)
}

func TestCreateUser(t *testing.T) {
	now := time.Now()
	user := testUser()

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").
					WithArgs(user.Login, user.Name, user.AuthHash, user.EncryptionSalt, user.WrappedMasterKey.EncryptedKey, 1).
					WillReturnRows(userRows(1, user, now))
			},
		},
		{
			name: "login taken",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "other error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())
			tt.setup(mock)

			created, err := repo.CreateUser(context.Background(), user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, created.UserID)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), created.UserID)
				assert.Equal(t, user.Login, created.Login)
				assert.Equal(t, *user.WrappedMasterKey, *created.WrappedMasterKey)
				assert.WithinDuration(t, now, created.CreatedAt, time.Second)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser_NoWrappedKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	user := testUser()
	user.WrappedMasterKey = nil

	_, err := repo.CreateUser(context.Background(), user)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_RetriesTransientError(t *testing.T) {
	fastRetries(t)
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())
	user := testUser()

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(userRows(7, user, time.Now()))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	user := testUser()

	t.Run("by login", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE login = \\$1").
			WithArgs("john").
			WillReturnRows(userRows(3, user, time.Now()))

		found, err := repo.FindUserByLogin(context.Background(), "john")
		require.NoError(t, err)
		assert.Equal(t, int64(3), found.UserID)
		assert.Equal(t, user.AuthHash, found.AuthHash)
		assert.Equal(t, user.EncryptionSalt, found.EncryptionSalt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(userRows(3, user, time.Now()))

		found, err := repo.FindUserByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "john", found.Login)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByLogin(context.Background(), "ghost")
		require.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(pgError(pgerrcode.UndefinedTable))

		_, err := repo.FindUserByID(context.Background(), 1)
		require.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet(), "non-retryable errors are not retried")
	})
}

func TestUpdateMasterKey(t *testing.T) {
	wrapped := models.WrappedMasterKey{EncryptedKey: "v1:bmV3:a2V5", Version: 1}

	tests := []struct {
		name    string
		result  func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE users SET").
					WithArgs("newhash", "bmV3c2FsdA==", wrapped.EncryptedKey, 1, int64(5)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown user",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "exec error",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE users SET").WillReturnError(errors.New("broken pipe"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())
			tt.result(mock)

			err := repo.UpdateMasterKey(context.Background(), 5, "newhash", "bmV3c2FsdA==", wrapped)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
