// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kalluba/kalluba-funding/internal/config"
	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/internal/store"
	"github.com/kalluba/kalluba-funding/internal/utils"
	"github.com/kalluba/kalluba-funding/internal/validators"
	"github.com/kalluba/kalluba-funding/models"
)

// Rate limit key prefixes. The client identifier is appended as is.
const (
	loginAttemptsPrefix        = "login_attempts_"
	registrationAttemptsPrefix = "registration_attempts_"
)

// authService is the concrete implementation of AuthService.
// Login and registration attempts are counted per client in a fixed-window
// RateLimiter; passwords are hashed by a PasswordHasher and sessions are
// HS256-signed JWTs.
type authService struct {
	userRepository store.UserRepository
	rateLimiter    store.RateLimiter
	validator      validators.Validator
	hasher         PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// loginAttempts and registrationAttempts are the per-window thresholds
	// at which further attempts are refused.
	loginAttempts        int
	registrationAttempts int

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository,
// rate limiter, request validator and password hasher, with token and
// threshold settings taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	rateLimiter store.RateLimiter,
	validator validators.Validator,
	hasher PasswordHasher,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:       userRepository,
		rateLimiter:          rateLimiter,
		validator:            validator,
		hasher:               hasher,
		tokenSignKey:         cfg.App.TokenSignKey,
		tokenIssuer:          cfg.App.TokenIssuer,
		tokenDuration:        cfg.App.TokenDuration,
		loginAttempts:        cfg.RateLimit.LoginAttempts,
		registrationAttempts: cfg.RateLimit.RegistrationAttempts,
		now:                  time.Now,
		logger:               logger,
	}
}

// Login authenticates a user by email and password.
//
// The steps run in a fixed order:
//  1. the request is validated;
//  2. a client at or above the login threshold gets ErrRateLimitExceeded
//     without any store access;
//  3. an unknown email counts as a failed attempt and yields
//     ErrInvalidCredentials;
//  4. so does a wrong password;
//  5. a successful login resets the counter and issues a token.
func (a *authService) Login(ctx context.Context, req models.LoginRequest, clientID string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid login request")
		return models.AuthResult{}, err
	}

	key := loginAttemptsPrefix + clientID
	if a.rateLimiter.GetCount(key) >= a.loginAttempts {
		log.Warn().Str("client", clientID).Msg("login rate limit exceeded")
		return models.AuthResult{}, ErrRateLimitExceeded
	}

	user, err := a.userRepository.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.rateLimiter.Increment(key)
		log.Info().Str("client", clientID).Msg("login with unknown email")
		return models.AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			a.rateLimiter.Increment(key)
			log.Info().Int64("id", user.ID).Str("client", clientID).Msg("wrong password")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", user.ID).Msg("password comparison failed")
		return models.AuthResult{}, err
	}

	a.rateLimiter.Reset(key)

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("creation of token failed")
		return models.AuthResult{}, err
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	return models.AuthResult{
		Token: token.SignedString,
		User:  user,
		Meta:  models.AuthMeta{TokenExpiry: token.ExpiresAt()},
	}, nil
}

// Register creates a USER account and logs it in.
//
// Every request that passes validation and the rate limit check counts
// towards the registration threshold, whether or not the account is created.
// A taken email yields store.ErrEmailAlreadyExists.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, clientID string) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid registration request")
		return models.AuthResult{}, err
	}

	key := registrationAttemptsPrefix + clientID
	if a.rateLimiter.GetCount(key) >= a.registrationAttempts {
		log.Warn().Str("client", clientID).Msg("registration rate limit exceeded")
		return models.AuthResult{}, ErrRateLimitExceeded
	}
	a.rateLimiter.Increment(key)

	_, err := a.userRepository.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("client", clientID).Msg("registration with taken email")
		return models.AuthResult{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.CreateUserWithPassword(ctx, models.User{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    passwordHash,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Role:            models.RoleUser,
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("creation of token failed")
		return models.AuthResult{}, err
	}

	log.Info().Int64("id", user.ID).Msg("user registered")

	return models.AuthResult{
		Token: token.SignedString,
		User:  user,
		Meta:  models.AuthMeta{TokenExpiry: token.ExpiresAt(), UserID: user.ID},
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expiry is reported before an issuer mismatch; every other failure is
// normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	switch {
	case errors.Is(err, utils.ErrTokenExpired):
		return models.Claims{}, ErrTokenExpired
	case errors.Is(err, utils.ErrTokenInvalidIssuer):
		return models.Claims{}, ErrInvalidIssuer
	case err != nil:
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrInvalidToken
	}

	return token.Claims, nil
}

func (a *authService) CurrentUser(ctx context.Context, claims models.Claims) (models.User, error) {
	user, err := a.userRepository.GetUser(ctx, claims.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", claims.UserID).Msg("current user lookup failed")
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}

// createToken issues a signed JWT for user carrying its id, email, name and
// role.
func (a *authService) createToken(user models.User) (models.Token, error) {
	claims := models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}

	token, err := utils.GenerateJWTToken(claims, a.tokenIssuer, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
