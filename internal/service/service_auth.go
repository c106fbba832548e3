package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bloglist/bloglist/internal/config"
	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/internal/store"
	"github.com/bloglist/bloglist/internal/utils"
	"github.com/bloglist/bloglist/models"
)

// minCredentialLength is the shortest username or password accepted at
// registration time.
const minCredentialLength = 3

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// It is an explicit configuration value; rotating it invalidates all
	// previously issued tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed of surrounding whitespace before validation
// and persistence. Both the username and the password must be present
// and at least three characters long. The password is hashed with bcrypt
// and the plaintext is discarded.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrCredentialsMissing if the username or password is empty.
//   - ErrCredentialsTooShort if either is shorter than three characters.
//   - store.ErrUsernameTaken if the username already exists
//     (case-sensitive exact match).
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(creds.Username)

	if username == "" || creds.Password == "" {
		log.Error().Str("username", username).Msg("missing username or password")
		return models.User{}, ErrCredentialsMissing
	}

	// counted in runes so that multibyte usernames are measured by
	// characters, not bytes
	if utf8.RuneCountInString(username) < minCredentialLength || utf8.RuneCountInString(creds.Password) < minCredentialLength {
		log.Error().Str("username", username).Msg("username or password too short")
		return models.User{}, ErrCredentialsTooShort
	}

	passwordHash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Name:         creds.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the supplied password
// against the stored bcrypt hash. Every failure path returns
// ErrInvalidCredentials so that the response does not reveal whether the
// username exists.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing username or password on login")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, creds.Password) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, embeds the username and the
// user id, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the
// signature, the issuer claim, and the expiry claim. Any validation
// failure is normalised to ErrTokenInvalid so that callers do not need
// to inspect low-level JWT errors. The embedded user's continued
// existence is not re-checked here.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}
