package service

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-zk-vault/internal/config"
	"github.com/MKhiriev/go-zk-vault/internal/crypto"
	"github.com/MKhiriev/go-zk-vault/internal/logger"
	"github.com/MKhiriev/go-zk-vault/internal/store"
	"github.com/MKhiriev/go-zk-vault/internal/utils"
	"github.com/MKhiriev/go-zk-vault/internal/validators"
	"github.com/MKhiriev/go-zk-vault/models"
)

// authService is the server implementation of [AuthService]. The auth hash
// sent by clients is HMAC'ed once more with hashKey before it is stored or
// compared, so a leaked users table does not let anyone log in.
type authService struct {
	userRepository store.UserRepository

	hashKey       string
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] over userRepository.
func NewAuthService(userRepository store.UserRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser validates and stores a new account.
//
// Returns ErrInvalidDataProvided (or a more specific validation error) for
// malformed input and store.ErrLoginAlreadyExists, wrapped, for a taken login.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Login = strings.TrimSpace(user.Login)
	if err := validate(ctx, user); err != nil {
		log.Error().Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, err
	}

	user.AuthHash = utils.HashString(user.AuthHash, a.hashKey)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.AuthHash = ""
	return registeredUser, nil
}

// Params returns the public key derivation parameters of login.
//
// An unknown login gets a stable decoy salt derived from the login, so the
// endpoint cannot be used to enumerate accounts.
func (a *authService) Params(ctx context.Context, login string) (models.KeyParams, error) {
	log := logger.FromContext(ctx)

	login = strings.TrimSpace(login)
	if login == "" {
		return models.KeyParams{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.KeyParams{Login: login, EncryptionSalt: a.decoySalt(login), KDFVersion: models.KDFVersionV1}, nil
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.KeyParams{}, fmt.Errorf("user search by login failed: %w", err)
	}

	return models.KeyParams{Login: foundUser.Login, EncryptionSalt: foundUser.EncryptionSalt, KDFVersion: models.KDFVersionV1}, nil
}

// Login checks the auth hash and returns the account with its
// password-wrapped master key. Unknown logins and wrong hashes both yield
// ErrWrongPassword.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, user, validators.FieldLogin, validators.FieldAuthHash); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, strings.TrimSpace(user.Login))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.EqualHash(foundUser.AuthHash, utils.HashString(user.AuthHash, a.hashKey)) {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	foundUser.AuthHash = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString. Every failure is reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) decoySalt(login string) string {
	sum, _ := hex.DecodeString(utils.HashString("decoy-salt:"+login, a.hashKey))
	return base64.StdEncoding.EncodeToString(sum[:crypto.SaltSize])
}
