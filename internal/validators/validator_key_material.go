package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldLogin            = "login"
	FieldAuthHash         = "auth_hash"
	FieldNewAuthHash      = "new_auth_hash"
	FieldEncryptionSalt   = "encryption_salt"
	FieldWrappedMasterKey = "wrapped_master_key"
	FieldRecoveryBlob     = "recovery_blob"
)

// KeyMaterialValidator validates accounts, key rotations and key blobs.
type KeyMaterialValidator struct {
}

func NewKeyMaterialValidator() Validator {
	return &KeyMaterialValidator{}
}

func (v *KeyMaterialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.MasterKeyRotation:
		return v.validateRotation(value, fields...)
	case *models.MasterKeyRotation:
		return v.validateRotation(*value, fields...)

	case models.WrappedMasterKey:
		return validateWrappedKey(value)
	case *models.WrappedMasterKey:
		return validateWrappedKey(*value)

	case models.RecoveryKey:
		return v.validateRecoveryKey(value)
	case *models.RecoveryKey:
		return v.validateRecoveryKey(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *KeyMaterialValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldAuthHash, FieldEncryptionSalt, FieldWrappedMasterKey}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrInvalidLogin
			}
		case FieldAuthHash:
			if user.AuthHash == "" {
				return ErrInvalidAuthHash
			}
		case FieldEncryptionSalt:
			if err := validateSalt(user.EncryptionSalt); err != nil {
				return err
			}
		case FieldWrappedMasterKey:
			if user.WrappedMasterKey == nil {
				return ErrMissingWrappedKey
			}
			if err := validateWrappedKey(*user.WrappedMasterKey); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyMaterialValidator) validateRotation(rotation models.MasterKeyRotation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthHash, FieldNewAuthHash, FieldEncryptionSalt, FieldWrappedMasterKey}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthHash:
			if rotation.AuthHash == "" {
				return ErrInvalidAuthHash
			}
		case FieldNewAuthHash:
			if rotation.NewAuthHash == "" {
				return fmt.Errorf("new %w", ErrInvalidAuthHash)
			}
		case FieldEncryptionSalt:
			if err := validateSalt(rotation.EncryptionSalt); err != nil {
				return err
			}
		case FieldWrappedMasterKey:
			if err := validateWrappedKey(rotation.WrappedMasterKey); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecoveryKey treats a missing version as v1.
func (v *KeyMaterialValidator) validateRecoveryKey(key models.RecoveryKey) error {
	if key.RecoveryBlob == nil || *key.RecoveryBlob == "" {
		return ErrEmptyRecoveryBlob
	}

	version := key.Version
	if version == 0 {
		version = models.WrapVersionV1
	}
	return validateWrappedKey(models.WrappedMasterKey{EncryptedKey: *key.RecoveryBlob, Version: version})
}

func validateSalt(salt string) error {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(raw) < crypto.SaltSize {
		return ErrInvalidSalt
	}
	return nil
}

// validateWrappedKey accepts only v1 wraps that look like ciphertext.
func validateWrappedKey(wrapped models.WrappedMasterKey) error {
	if wrapped.Version == 0 {
		return ErrVersionNotSpecified
	}
	if wrapped.Version != models.WrapVersionV1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, wrapped.Version)
	}
	if !crypto.IsEncrypted(wrapped.EncryptedKey) {
		return ErrNotCiphertext
	}
	return nil
}
