package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-zk-vault/models"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var userColumns = []string{
	"user_id",
	"login",
	"name",
	"auth_hash",
	"encryption_salt",
	"wrapped_master_key",
	"key_version",
	"created_at",
}

var profileColumns = []string{
	"login",
	"name",
	"encryption_salt",
	"has_recovery_key",
	"last_login_at",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	if user.WrappedMasterKey == nil {
		return "", nil, fmt.Errorf("user %q has no wrapped master key", user.Login)
	}

	return psql.
		Insert("users").
		Columns("login", "name", "auth_hash", "encryption_salt", "wrapped_master_key", "key_version").
		Values(user.Login, user.Name, user.AuthHash, user.EncryptionSalt, user.WrappedMasterKey.EncryptedKey, user.WrappedMasterKey.Version).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildUpdateMasterKeyQuery(userID int64, authHash, encryptionSalt string, wrapped models.WrappedMasterKey) (string, []any, error) {
	return psql.
		Update("users").
		Set("auth_hash", authHash).
		Set("encryption_salt", encryptionSalt).
		Set("wrapped_master_key", wrapped.EncryptedKey).
		Set("key_version", wrapped.Version).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildGetRecoveryKeyQuery(userID int64) (string, []any, error) {
	return psql.
		Select("user_id", "recovery_blob", "version", "updated_at").
		From("recovery_keys").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSaveRecoveryKeyQuery(record models.RecoveryKeyRecord) (string, []any, error) {
	return psql.
		Insert("recovery_keys").
		Columns("user_id", "recovery_blob", "version").
		Values(record.UserID, record.Blob, record.Version).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET recovery_blob = EXCLUDED.recovery_blob, version = EXCLUDED.version, updated_at = NOW()").
		ToSql()
}

func buildDeleteRecoveryKeyQuery(userID int64) (string, []any, error) {
	return psql.
		Delete("recovery_keys").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildSaveProfileQuery(profile models.Profile) (string, []any, error) {
	lastLogin := profile.LastLoginAt
	if lastLogin.IsZero() {
		lastLogin = time.Now()
	}

	return sqlite.
		Insert("profiles").
		Columns(profileColumns...).
		Values(profile.Login, profile.Name, profile.EncryptionSalt, profile.HasRecoveryKey, lastLogin.UTC()).
		Suffix("ON CONFLICT (login) DO UPDATE SET name = excluded.name, encryption_salt = excluded.encryption_salt, has_recovery_key = excluded.has_recovery_key, last_login_at = excluded.last_login_at").
		ToSql()
}

func buildGetProfileQuery(login string) (string, []any, error) {
	return sqlite.
		Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildLastProfileQuery() (string, []any, error) {
	return sqlite.
		Select(profileColumns...).
		From("profiles").
		OrderBy("last_login_at DESC").
		Limit(1).
		ToSql()
}

func buildDeleteProfileQuery(login string) (string, []any, error) {
	return sqlite.
		Delete("profiles").
		Where(sq.Eq{"login": login}).
		ToSql()
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		wrapped models.WrappedMasterKey
	)
	err := row.Scan(
		&user.UserID,
		&user.Login,
		&user.Name,
		&user.AuthHash,
		&user.EncryptionSalt,
		&wrapped.EncryptedKey,
		&wrapped.Version,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	user.WrappedMasterKey = &wrapped
	return user, nil
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.Login,
		&profile.Name,
		&profile.EncryptionSalt,
		&profile.HasRecoveryKey,
		&profile.LastLoginAt,
	)
	return profile, err
}
