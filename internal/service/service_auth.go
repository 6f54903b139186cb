package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muzaparoff/rest-api-exam/internal/config"
	"github.com/muzaparoff/rest-api-exam/internal/logger"
	"github.com/muzaparoff/rest-api-exam/internal/store"
	"github.com/muzaparoff/rest-api-exam/internal/utils"
	"github.com/muzaparoff/rest-api-exam/models"
)

// authService is the concrete implementation of AuthService. Credentials
// are resolved through the injected CredentialStore and verified with
// bcrypt; successful logins receive an HMAC-SHA256 signed JWT.
type authService struct {
	credentials store.CredentialStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// CredentialStore and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentials store.CredentialStore, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		credentials:   credentials,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates a username/password pair and issues a signed token.
//
// An unknown username and a wrong password both surface as
// ErrWrongCredentials so a caller cannot probe which usernames exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Debug().Str("username", req.Username).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	credential, err := a.credentials.Find(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("credential lookup failed")
		return models.Token{}, err
	}

	if !credential.IsActive {
		log.Warn().Str("username", req.Username).Msg("login attempt on disabled account")
		return models.Token{}, ErrInactiveAccount
	}

	if err = bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("username", req.Username).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, credential.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("token generation failed")
		return models.Token{}, errors.Join(ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed, bad signature) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// TokenDurationSeconds exposes the configured token lifetime for the login
// response body.
func (a *authService) TokenDurationSeconds() int64 {
	return int64(a.tokenDuration.Seconds())
}
