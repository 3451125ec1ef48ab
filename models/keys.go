// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WrapVersionV1 is the only wrapping scheme in use: AES-256-GCM over the
// base64 master key, encoded as a v1 ciphertext.
const WrapVersionV1 = 1

// KDFVersionV1 identifies PBKDF2-HMAC-SHA256 with the v1 iteration count.
const KDFVersionV1 = 1

// WrappedMasterKey is a master key sealed under a wrapping key.
// The same shape is used for the password wrap and the recovery wrap.
type WrappedMasterKey struct {
	EncryptedKey string `json:"encryptedKey"`
	Version      int    `json:"version"`
}

// KeyParams are the public parameters needed to re-derive the
// password wrapping key on a new device.
type KeyParams struct {
	Login          string `json:"login"`
	EncryptionSalt string `json:"encryptionSalt"`
	KDFVersion     int    `json:"kdfVersion"`
}

// MasterKeyRotation replaces the password wrap of the master key after a
// password change. AuthHash proves the old password, NewAuthHash becomes the
// login proof from now on.
type MasterKeyRotation struct {
	AuthHash         string           `json:"authHash"`
	NewAuthHash      string           `json:"newAuthHash"`
	EncryptionSalt   string           `json:"encryptionSalt"`
	WrappedMasterKey WrappedMasterKey `json:"wrappedMasterKey"`
}
