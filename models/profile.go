package models

import "time"

// Profile is the non-secret account state the client caches locally so it
// can show the login screen and the recovery banner before any network call.
type Profile struct {
	Login          string
	Name           string
	EncryptionSalt string
	HasRecoveryKey bool
	LastLoginAt    time.Time
}
