package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/config"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/crypto"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/store"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and scrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies the stored password hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The plain-text password never reaches the repository: it is hashed with
// scrypt and only the encoded hash is persisted.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any of the request fields is empty.
//   - ErrLoginAlreadyExists if the login is already taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Senha == "" || request.Nome == "" {
		log.Error().Str("login", maskLogin(request.Login)).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.HashPassword(request.Senha)
	if err != nil {
		log.Err(err).Str("login", maskLogin(request.Login)).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        request.Login,
		PasswordHash: passwordHash,
		Name:         request.Nome,
	})
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			log.Warn().Str("login", maskLogin(request.Login)).Msg("login already taken")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("login", maskLogin(request.Login)).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by login and verifies the supplied password against
// the stored scrypt hash in constant time.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Login or Senha is empty.
//   - ErrUserNotFound for an unknown login or a wrong password. The two
//     failure modes are deliberately indistinguishable to the caller.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Senha == "" {
		log.Error().Str("login", maskLogin(request.Login)).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, request.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("login", maskLogin(request.Login)).Msg("login attempt for unknown user")
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("login", maskLogin(request.Login)).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	match, err := a.hasher.VerifyPassword(foundUser.PasswordHash, request.Senha)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrUserNotFound
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// maskLogin redacts a login for log output. Only the first character is kept
// so that log entries never carry a full account identifier; correlation of a
// request's log entries happens through the trace ID, not the login.
func maskLogin(login string) string {
	runes := []rune(login)
	if len(runes) == 0 {
		return ""
	}

	return string(runes[0]) + "***"
}
