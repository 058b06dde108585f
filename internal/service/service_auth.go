// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and JWT token lifecycle
// using a UserRepository for persistence and argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the request payload contract (email format,
	// password minimum length).
	validator *validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value fail verification.
	tokenIssuer string

	// accessTokenTTL is the validity window of access tokens (1 hour by default).
	accessTokenTTL time.Duration

	// refreshTokenTTL is the validity window of refresh tokens (7 days by default).
	refreshTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator *validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validator,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		logger:          logger,
	}
}

// Register creates a new account.
//
// The password is hashed with argon2id before persistence; the plaintext is
// never stored. The display name starts empty, matching the browser client
// contract.
//
// Returns the new user's ID with a fresh token pair, or:
//   - *validators.ValidationError if the payload fails its contract.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(creds); err != nil {
		log.Error().Str("email", creds.Email).Msg("invalid registration data provided")
		return models.TokenPair{}, err
	}

	passwordHash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.TokenPair{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        creds.Email,
		Name:         "",
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueTokenPair(ctx, registered.UserID)
}

// Login authenticates an existing account.
//
// Returns the user's ID with a fresh token pair, or:
//   - *validators.ValidationError if the payload fails its contract.
//   - store.ErrNoUserWasFound if no account matches the email.
//   - ErrWrongPassword if the password does not verify against the stored
//     digest. A corrupt digest fails the same way as a wrong password.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(creds); err != nil {
		log.Error().Str("email", creds.Email).Msg("invalid login data provided")
		return models.TokenPair{}, err
	}

	found, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.TokenPair{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(found.PasswordHash, creds.Password) {
		log.Error().
			Int64("id", found.UserID).
			Str("email", found.Email).
			Msg("wrong password")
		return models.TokenPair{}, ErrWrongPassword
	}

	return a.issueTokenPair(ctx, found.UserID)
}

// Refresh verifies a refresh token and rotates the pair.
//
// Both tokens are reissued; the old refresh token keeps working until its
// own expiry because tokens are stateless and cannot be revoked.
//
// Returns the resolved user with the new pair, or:
//   - ErrTokenIsExpired / ErrTokenIsInvalid per token verification.
//   - store.ErrNoUserWasFound if the subject no longer exists.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.RefreshedSession, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, refreshToken)
	if err != nil {
		log.Err(err).Msg("refresh token verification failed")
		return models.RefreshedSession{}, err
	}

	found, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("id", token.UserID).Msg("refresh token subject lookup failed")
		return models.RefreshedSession{}, fmt.Errorf("refresh token subject lookup failed: %w", err)
	}

	pair, err := a.issueTokenPair(ctx, found.UserID)
	if err != nil {
		return models.RefreshedSession{}, err
	}

	return models.RefreshedSession{
		User:         found,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Verification failures are normalised to two sentinel errors so callers do
// not need to inspect low-level JWT errors: ErrTokenIsExpired when only the
// expiry check failed, ErrTokenIsInvalid for everything else.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// GetUserByID resolves a token subject to a live account. Used by the auth
// middleware after token verification.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	found, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return found, nil
}

// issueTokenPair mints a fresh access and refresh token for the given user.
// The two tokens differ only in their expiry offset.
func (a *authService) issueTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		UserID:       userID,
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}
