package models

import "time"

// User is an account as the key blob service stores it.
// The server keeps only values it cannot turn back into key material:
// the salt is public, the auth hash is one-way and the master key is wrapped.
type User struct {
	// UserID is the internal identifier, never exposed via JSON.
	UserID int64 `json:"-"`

	// Login is the unique account login.
	Login string `json:"login"`

	// Name is the display name shown in the UI.
	Name string `json:"name,omitempty"`

	// AuthHash is the client-computed proof of the password-derived
	// wrapping key (base64). The server stores it HMAC'ed again.
	AuthHash string `json:"authHash,omitempty"`

	// EncryptionSalt is the base64 salt the password is stretched with.
	EncryptionSalt string `json:"encryptionSalt,omitempty"`

	// WrappedMasterKey is the master key sealed under the password-derived key.
	WrappedMasterKey *WrappedMasterKey `json:"wrappedMasterKey,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TableName returns the name of the database table backing [User].
func (u User) TableName() string {
	return "users"
}
