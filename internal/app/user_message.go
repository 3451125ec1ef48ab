package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/recovery"
	"github.com/MKhiriev/go-zk-vault/internal/securestore"
	"github.com/MKhiriev/go-zk-vault/internal/service"
	"github.com/MKhiriev/go-zk-vault/internal/store"
)

// Guidance shown by the client.
const (
	MsgRetypePhrase        = "The recovery phrase is incorrect. Check each word and try again."
	MsgPhraseWordCount     = "The recovery phrase must have exactly 24 words."
	MsgVerificationFailed  = "The words do not match your recovery phrase. Look at the phrase again and retry."
	MsgNoRecoveryKey       = "No recovery key is set up for this account. Without it the encrypted data cannot be restored."
	MsgUseRecoveryPhrase   = "Your password was accepted but the encryption key could not be opened. Restore it with your recovery phrase."
	MsgLoginAgain          = "Your session has ended. Please log in again."
	MsgWrongPassword       = "Wrong login or password."
	MsgWeakPassword        = "This password is too easy to guess. Use a longer phrase with unrelated words."
	MsgPasswordUnchanged   = "The new password must differ from the current one."
	MsgLoginTaken          = "This login is already taken."
	MsgServerUnavailable   = "The server cannot be reached. Check your connection and try again."
	MsgSecureStorage       = "The system keychain is not available. You will have to log in again after restarting."
	MsgKeyStorageCorrupted = "The key saved on this device is damaged. Log in again or restore from your recovery phrase."
	MsgUnreadableData      = "Some data could not be decrypted. If this persists, contact support."
	MsgUpdateRequired      = "This data was written by a newer version. Please update the app."
	MsgInvalidInput        = "Some required fields are missing or invalid."
	MsgCanceled            = "Canceled."
	MsgUnexpected          = "Something went wrong. If this persists, contact support."
)

// userMessages is checked in order. More specific classes come first:
// an unwrap failure also carries crypto.ErrDecryptionFailed, and an
// incorrect phrase may carry it too.
var userMessages = []struct {
	target  error
	message string
}{
	{recovery.ErrIncorrectRecoveryPhrase, MsgRetypePhrase},
	{recovery.ErrInvalidWordCount, MsgPhraseWordCount},
	{crypto.ErrInvalidMnemonic, MsgPhraseWordCount},
	{recovery.ErrVerificationMismatch, MsgVerificationFailed},
	{recovery.ErrBlobNotFound, MsgNoRecoveryKey},
	{keystore.ErrMasterKeyUnwrap, MsgUseRecoveryPhrase},
	{keystore.ErrNoKeyAvailable, MsgLoginAgain},
	{keystore.ErrCorruptStoredKey, MsgKeyStorageCorrupted},
	{keystore.ErrKeyVerification, MsgKeyStorageCorrupted},
	{service.ErrWrongPassword, MsgWrongPassword},
	{service.ErrTokenIsExpiredOrInvalid, MsgLoginAgain},
	{service.ErrWeakPassword, MsgWeakPassword},
	{service.ErrPasswordUnchanged, MsgPasswordUnchanged},
	{store.ErrLoginAlreadyExists, MsgLoginTaken},
	{service.ErrServerUnavailable, MsgServerUnavailable},
	{service.ErrUnsupportedKDF, MsgUpdateRequired},
	{crypto.ErrUnsupportedVersion, MsgUpdateRequired},
	{securestore.ErrSecureStoreUnavailable, MsgSecureStorage},
	{crypto.ErrDecryptionFailed, MsgUnreadableData},
	{service.ErrInvalidDataProvided, MsgInvalidInput},
	{context.Canceled, MsgCanceled},
}

// UserMessage returns what to tell the user about err. It never includes
// err's text, which may name internal paths.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return MsgUnexpected
}
