// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/models"
)

func sealedKey(t *testing.T) models.WrappedMasterKey {
	t.Helper()

	kc := crypto.NewKeyChainService(crypto.WithKDFIterations(1000))
	mk, err := kc.GenerateMasterKey()
	require.NoError(t, err)
	wk, err := kc.GenerateMasterKey()
	require.NoError(t, err)

	wrapped, err := kc.WrapMasterKey(mk, wk)
	require.NoError(t, err)
	return wrapped
}

func validSalt() string {
	return base64.StdEncoding.EncodeToString(make([]byte, crypto.SaltSize))
}

func validUser(t *testing.T) models.User {
	wrapped := sealedKey(t)
	return models.User{
		Login:            "alice",
		AuthHash:         "proof",
		EncryptionSalt:   validSalt(),
		WrappedMasterKey: &wrapped,
	}
}

func TestKeyMaterialValidator_User(t *testing.T) {
	v := NewKeyMaterialValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validUser(t)))
	u := validUser(t)
	require.NoError(t, v.Validate(ctx, &u))

	tests := []struct {
		name   string
		mutate func(*models.User)
		want   error
	}{
		{"blank login", func(u *models.User) { u.Login = " " }, ErrInvalidLogin},
		{"no auth hash", func(u *models.User) { u.AuthHash = "" }, ErrInvalidAuthHash},
		{"salt not base64", func(u *models.User) { u.EncryptionSalt = "%%%" }, ErrInvalidSalt},
		{"salt too short", func(u *models.User) { u.EncryptionSalt = base64.StdEncoding.EncodeToString([]byte("short")) }, ErrInvalidSalt},
		{"no wrapped key", func(u *models.User) { u.WrappedMasterKey = nil }, ErrMissingWrappedKey},
		{"no version", func(u *models.User) { u.WrappedMasterKey.Version = 0 }, ErrVersionNotSpecified},
		{"future version", func(u *models.User) { u.WrappedMasterKey.Version = 2 }, ErrUnsupportedVersion},
		{"plaintext key", func(u *models.User) { u.WrappedMasterKey.EncryptedKey = "bWFzdGVyLWtleQ==" }, ErrNotCiphertext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser(t)
			tt.mutate(&u)
			assert.ErrorIs(t, v.Validate(ctx, u), tt.want)
		})
	}
}

func TestKeyMaterialValidator_UserFields(t *testing.T) {
	v := NewKeyMaterialValidator()
	ctx := context.Background()

	login := models.User{Login: "alice", AuthHash: "proof"}
	assert.NoError(t, v.Validate(ctx, login, FieldLogin, FieldAuthHash))
	assert.ErrorIs(t, v.Validate(ctx, login), ErrInvalidSalt)
	assert.ErrorIs(t, v.Validate(ctx, login, "nope"), ErrUnknownField)
}

func TestKeyMaterialValidator_Rotation(t *testing.T) {
	v := NewKeyMaterialValidator()
	ctx := context.Background()

	rotation := models.MasterKeyRotation{
		AuthHash:         "old",
		NewAuthHash:      "new",
		EncryptionSalt:   validSalt(),
		WrappedMasterKey: sealedKey(t),
	}
	require.NoError(t, v.Validate(ctx, rotation))

	bad := rotation
	bad.NewAuthHash = ""
	assert.ErrorIs(t, v.Validate(ctx, bad), ErrInvalidAuthHash)

	bad = rotation
	bad.WrappedMasterKey.EncryptedKey = "plain"
	assert.ErrorIs(t, v.Validate(ctx, &bad), ErrNotCiphertext)
}

func TestKeyMaterialValidator_RecoveryKey(t *testing.T) {
	v := NewKeyMaterialValidator()
	ctx := context.Background()
	blob := sealedKey(t).EncryptedKey
	plain := "abandon ability"

	assert.NoError(t, v.Validate(ctx, models.RecoveryKey{RecoveryBlob: &blob}))
	assert.NoError(t, v.Validate(ctx, models.RecoveryKey{RecoveryBlob: &blob, Version: 1}))
	assert.ErrorIs(t, v.Validate(ctx, models.RecoveryKey{}), ErrEmptyRecoveryBlob)
	assert.ErrorIs(t, v.Validate(ctx, models.RecoveryKey{RecoveryBlob: new(string)}), ErrEmptyRecoveryBlob)
	assert.ErrorIs(t, v.Validate(ctx, models.RecoveryKey{RecoveryBlob: &blob, Version: 2}), ErrUnsupportedVersion)
	assert.ErrorIs(t, v.Validate(ctx, &models.RecoveryKey{RecoveryBlob: &plain}), ErrNotCiphertext)
}

func TestKeyMaterialValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewKeyMaterialValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
