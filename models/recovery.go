package models

import "time"

// RecoveryKey is the wire shape of the recovery-key endpoint.
// RecoveryBlob is nil when the account has no recovery wrap.
type RecoveryKey struct {
	RecoveryBlob *string `json:"recoveryBlob"`
	Version      int     `json:"version,omitempty"`
}

// RecoveryKeyRecord is a stored recovery blob. The server cannot open it.
type RecoveryKeyRecord struct {
	UserID    int64
	Blob      string
	Version   int
	UpdatedAt time.Time
}
