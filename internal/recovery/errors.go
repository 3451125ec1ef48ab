package recovery

import "errors"

var (
	// ErrVerificationMismatch means a re-typed word did not match.
	// It is a UI retry, not a crypto failure.
	ErrVerificationMismatch = errors.New("recovery phrase verification failed")

	// ErrBlobNotFound means the account has no recovery key set up.
	ErrBlobNotFound = errors.New("no recovery key is set up for this account")

	// ErrIncorrectRecoveryPhrase means the phrase does not open the blob.
	ErrIncorrectRecoveryPhrase = errors.New("incorrect recovery phrase")

	ErrInvalidWordCount  = errors.New("recovery phrase must have exactly 24 words")
	ErrInvalidPosition   = errors.New("word position out of range")
	ErrInvalidStep       = errors.New("not allowed in the current step")
	ErrRestoreUnverified = errors.New("recovered key could not be confirmed")
)
