package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/MKhiriev/go-zk-vault/internal/adapter"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/keystore"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/models"
)

// MinPasswordScore is the lowest accepted zxcvbn score (0..4).
const MinPasswordScore = 3

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	keychain crypto.KeyChainService
	keys     *keystore.KeyStore
	profiles store.ProfileRepository
	session  *session

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, keys *keystore.KeyStore, profiles store.ProfileRepository, log *logger.Logger) ClientAuthService {
	return newClientAuthService(serverAdapter, keychain, keys, profiles, newSession(profiles, log), log)
}

func newClientAuthService(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, keys *keystore.KeyStore, profiles store.ProfileRepository, sess *session, log *logger.Logger) *clientAuthService {
	return &clientAuthService{
		adapter:  serverAdapter,
		keychain: keychain,
		keys:     keys,
		profiles: profiles,
		session:  sess,
		logger:   log.WithComponent("auth"),
	}
}

// Register implements [ClientAuthService].
func (a *clientAuthService) Register(ctx context.Context, login, name, password string) error {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return ErrInvalidDataProvided
	}
	if err := checkPasswordStrength(password, login, name); err != nil {
		return err
	}

	salt, err := a.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	masterKey, err := a.keychain.GenerateMasterKey()
	if err != nil {
		return fmt.Errorf("generate master key: %w", err)
	}
	defer masterKey.Wipe()

	wrappingKey, err := a.keychain.DeriveKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive wrapping key: %w", err)
	}
	defer wrappingKey.Wipe()

	wrapped, err := a.keychain.WrapMasterKey(masterKey, wrappingKey)
	if err != nil {
		return fmt.Errorf("wrap master key: %w", err)
	}

	user := models.User{
		Login:            login,
		Name:             name,
		AuthHash:         a.authHash(wrappingKey),
		EncryptionSalt:   base64.StdEncoding.EncodeToString(salt),
		WrappedMasterKey: &wrapped,
	}
	if _, err = a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	if err = a.keys.Install(ctx, masterKey); err != nil {
		return fmt.Errorf("install master key: %w", err)
	}
	a.keys.SetHasRecoveryKey(ctx, false)

	a.session.update(ctx, func(p *models.Profile) {
		*p = models.Profile{Login: login, Name: name, EncryptionSalt: user.EncryptionSalt, LastLoginAt: time.Now()}
	})
	a.logger.Info().Str("login", login).Msg("account registered")
	return nil
}

// Login implements [ClientAuthService].
func (a *clientAuthService) Login(ctx context.Context, login, password string) error {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return ErrInvalidDataProvided
	}

	params, err := a.adapter.RequestParams(ctx, login)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}
	if params.KDFVersion != 0 && params.KDFVersion != models.KDFVersionV1 {
		return fmt.Errorf("%w: %d", ErrUnsupportedKDF, params.KDFVersion)
	}

	salt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil {
		return fmt.Errorf("%w: decode account salt: %w", ErrLoginOnServer, err)
	}

	wrappingKey, err := a.keychain.DeriveKey(password, salt)
	if err != nil {
		return fmt.Errorf("derive wrapping key: %w", err)
	}
	defer wrappingKey.Wipe()

	found, err := a.adapter.Login(ctx, models.User{Login: login, AuthHash: a.authHash(wrappingKey)})
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.session.update(ctx, func(p *models.Profile) {
		*p = models.Profile{Login: login, Name: found.Name, EncryptionSalt: params.EncryptionSalt, LastLoginAt: time.Now()}
	})

	if _, err = a.keys.InitializeWithWrappingKey(ctx, wrappingKey); err != nil {
		if errors.Is(err, keystore.ErrMasterKeyUnwrap) {
			// the server accepted the password, so the session stays valid
			// for a restore from the recovery phrase
			a.logger.Warn().Str("login", login).Msg("master key does not open with this password")
			if clearErr := a.keys.Clear(ctx); clearErr != nil {
				a.logger.Warn().Err(clearErr).Msg("key store not cleared")
			}
		}
		return fmt.Errorf("initialize key store: %w", mapAdapterError(err))
	}

	a.refreshRecoveryFlag(ctx)
	a.logger.Info().Str("login", login).Msg("logged in")
	return nil
}

// Unlock implements [ClientAuthService].
func (a *clientAuthService) Unlock(ctx context.Context) (bool, error) {
	ok, err := a.keys.InitializeFromSecureStore(ctx)
	if err != nil || !ok {
		return false, err
	}

	if profile, err := a.profiles.LastProfile(ctx); err == nil {
		a.session.mu.Lock()
		a.session.profile = profile
		a.session.mu.Unlock()
	}
	return true, nil
}

// ChangePassword implements [ClientAuthService].
func (a *clientAuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}
	if subtle.ConstantTimeCompare([]byte(oldPassword), []byte(newPassword)) == 1 {
		return ErrPasswordUnchanged
	}
	if a.keys.State() != keystore.StateReady {
		return keystore.ErrNoKeyAvailable
	}

	profile := a.session.current()
	if err := checkPasswordStrength(newPassword, profile.Login, profile.Name); err != nil {
		return err
	}

	oldKey, _, err := a.currentWrappingKey(ctx, oldPassword)
	if err != nil {
		return err
	}
	defer oldKey.Wipe()

	// the old password must still open the server-held wrap
	wrapped, err := a.adapter.GetWrappedMasterKey(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	opened, err := a.keychain.UnwrapMasterKey(wrapped, oldKey)
	if err != nil {
		return ErrWrongPassword
	}
	opened.Wipe()

	newSalt, err := a.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	newKey, err := a.keychain.DeriveKey(newPassword, newSalt)
	if err != nil {
		return fmt.Errorf("derive wrapping key: %w", err)
	}
	defer newKey.Wipe()

	rotation := models.MasterKeyRotation{
		AuthHash:       a.authHash(oldKey),
		NewAuthHash:    a.authHash(newKey),
		EncryptionSalt: base64.StdEncoding.EncodeToString(newSalt),
	}
	if err = a.rotate(ctx, newKey, rotation); err != nil {
		return err
	}

	a.session.update(ctx, func(p *models.Profile) { p.EncryptionSalt = rotation.EncryptionSalt })
	a.logger.Info().Msg("password changed, master key re-wrapped")
	return nil
}

// RewrapAfterRecovery implements [ClientAuthService].
func (a *clientAuthService) RewrapAfterRecovery(ctx context.Context, password string) error {
	if password == "" {
		return ErrInvalidDataProvided
	}
	if a.keys.State() != keystore.StateReady {
		return keystore.ErrNoKeyAvailable
	}

	wrappingKey, salt, err := a.currentWrappingKey(ctx, password)
	if err != nil {
		return err
	}
	defer wrappingKey.Wipe()

	authHash := a.authHash(wrappingKey)
	rotation := models.MasterKeyRotation{
		AuthHash:       authHash,
		NewAuthHash:    authHash,
		EncryptionSalt: salt,
	}
	if err = a.rotate(ctx, wrappingKey, rotation); err != nil {
		return err
	}

	a.logger.Info().Msg("recovered master key re-wrapped under the password")
	return nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	a.session.reset()

	if err := a.keys.Clear(ctx); err != nil {
		return fmt.Errorf("clear key store: %w", err)
	}
	a.logger.Info().Msg("logged out")
	return nil
}

// Profile implements [ClientAuthService].
func (a *clientAuthService) Profile(ctx context.Context) (models.Profile, error) {
	if p := a.session.current(); p.Login != "" {
		return p, nil
	}
	return a.profiles.LastProfile(ctx)
}

// currentWrappingKey derives the wrapping key of password with the
// account's current salt, which it also returns.
func (a *clientAuthService) currentWrappingKey(ctx context.Context, password string) (crypto.EncryptionKey, string, error) {
	params, err := a.adapter.GetKeyParams(ctx)
	if err != nil {
		return nil, "", mapAdapterError(err)
	}

	salt, err := base64.StdEncoding.DecodeString(params.EncryptionSalt)
	if err != nil {
		return nil, "", fmt.Errorf("decode account salt: %w", err)
	}

	key, err := a.keychain.DeriveKey(password, salt)
	if err != nil {
		return nil, "", fmt.Errorf("derive wrapping key: %w", err)
	}
	return key, params.EncryptionSalt, nil
}

// rotate wraps the live master key under wrappingKey and uploads it with
// the proofs in rotation.
func (a *clientAuthService) rotate(ctx context.Context, wrappingKey crypto.EncryptionKey, rotation models.MasterKeyRotation) error {
	err := a.keys.WithKey(func(masterKey crypto.EncryptionKey) error {
		var err error
		rotation.WrappedMasterKey, err = a.keychain.WrapMasterKey(masterKey, wrappingKey)
		return err
	})
	if err != nil {
		return fmt.Errorf("wrap master key: %w", err)
	}

	err = a.adapter.RotateMasterKey(ctx, rotation)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrWrongPassword
	}
	if err != nil {
		return fmt.Errorf("upload wrapped master key: %w", mapAdapterError(err))
	}
	return nil
}

// refreshRecoveryFlag mirrors the server's recovery blob state. Failures
// keep the previous flag.
func (a *clientAuthService) refreshRecoveryFlag(ctx context.Context) {
	key, err := a.adapter.GetRecoveryKey(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("recovery key status unknown")
		return
	}

	has := key.RecoveryBlob != nil && *key.RecoveryBlob != ""
	a.keys.SetHasRecoveryKey(ctx, has)
	a.session.update(ctx, func(p *models.Profile) { p.HasRecoveryKey = has })
}

func (a *clientAuthService) authHash(wrappingKey crypto.EncryptionKey) string {
	return base64.StdEncoding.EncodeToString(a.keychain.AuthHash(wrappingKey))
}

// checkPasswordStrength rejects passwords zxcvbn scores below
// MinPasswordScore. userInputs are penalized as dictionary words.
func checkPasswordStrength(password string, userInputs ...string) error {
	inputs := make([]string, 0, len(userInputs))
	for _, in := range userInputs {
		if in != "" {
			inputs = append(inputs, in)
		}
	}

	if score := zxcvbn.PasswordStrength(password, inputs).Score; score < MinPasswordScore {
		return fmt.Errorf("%w: score %d of 4", ErrWeakPassword, score)
	}
	return nil
}
