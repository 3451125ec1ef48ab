package crypto

import "github.com/MKhiriev/go-zk-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all client-side cryptography of the zero-knowledge scheme.
// It knows nothing about the network, the database or users. Its only job is
// to create keys, protect them and seal individual field values.
//
// Key hierarchy:
//
//	Salt, MK  = GenerateSalt() + GenerateMasterKey()   (registration)
//	WK        = DeriveKey(password, Salt)              (every login)
//	Wrapped   = WrapMasterKey(MK, WK)                  (stored on the server)
//	AuthHash  = AuthHash(WK)                           (proves knowledge of WK)
//	RK        = DeriveKeyFromMnemonic(24 words)        (recovery only)
type KeyChainService interface {
	// DeriveKey runs PBKDF2-HMAC-SHA256 over secret and salt and returns a
	// 32-byte wrapping key. Identical inputs always yield identical keys.
	DeriveKey(secret string, salt Salt) (EncryptionKey, error)

	// GenerateMasterKey returns 32 random bytes from the OS CSPRNG.
	GenerateMasterKey() (EncryptionKey, error)

	// GenerateSalt returns 16 random bytes. The salt is not a secret.
	GenerateSalt() (Salt, error)

	// Encrypt seals plaintext with AES-256-GCM under a fresh random IV and
	// returns the "v1:<iv>:<payload>" encoding.
	Encrypt(plaintext string, key EncryptionKey) (string, error)

	// Decrypt opens a value produced by Encrypt. Any failure is reported as
	// ErrDecryptionFailed.
	Decrypt(ciphertext string, key EncryptionKey) (string, error)

	// IsEncrypted reports whether value has the shape of a ciphertext.
	IsEncrypted(value string) bool

	// WrapMasterKey seals masterKey under wrappingKey.
	WrapMasterKey(masterKey, wrappingKey EncryptionKey) (models.WrappedMasterKey, error)

	// UnwrapMasterKey opens a wrapped master key.
	UnwrapMasterKey(wrapped models.WrappedMasterKey, wrappingKey EncryptionKey) (EncryptionKey, error)

	// GenerateRecoveryMnemonic returns 24 space-separated BIP-39 words
	// encoding 256 bits of fresh entropy.
	GenerateRecoveryMnemonic() (string, error)

	// DeriveKeyFromMnemonic normalizes the phrase and derives the recovery
	// wrapping key from it with a fixed recovery salt.
	DeriveKeyFromMnemonic(mnemonic string) (EncryptionKey, error)

	// AuthHash returns the value sent to the server at login instead of the
	// wrapping key. The server cannot compute the wrapping key back from it.
	AuthHash(wrappingKey EncryptionKey) []byte
}
