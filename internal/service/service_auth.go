// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/quiet-inbox/internal/config"
	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"github.com/MKhiriev/quiet-inbox/internal/utils"
	"github.com/MKhiriev/quiet-inbox/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyBcryptHash is compared against when a login targets an unknown email,
// keeping response timing independent of account existence.
var dummyBcryptHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("quiet-inbox-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// authService is the concrete implementation of AuthService.
// It handles device and email registration, credential verification, and JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

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
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// A device ID is always required. Email and password are optional as a pair:
// when both are present the password is hashed with bcrypt and stored, and the
// account can later sign in on any device; when both are absent the account is
// anonymous and bound to the device. Supplying only one of the two is
// rejected.
//
// Registering a device ID that already has an account is not an error: the
// existing account is looked up and returned, so a reinstalled client ends up
// signed in to its original identity.
//
// Returns the persisted user (with a server-assigned UserID and the default
// quiet-hours profile already created) or:
//   - ErrValidationNoDeviceID if DeviceID is empty.
//   - ErrValidationPartialCredentials if exactly one of Email/Password is set.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already registered — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.DeviceID == "" {
		log.Error().Msg("registration without device ID")
		return models.User{}, ErrValidationNoDeviceID
	}

	hasEmail := request.Email != nil && *request.Email != ""
	hasPassword := request.Password != nil && *request.Password != ""
	if hasEmail != hasPassword {
		log.Error().Bool("email", hasEmail).Bool("password", hasPassword).Msg("partial credentials on registration")
		return models.User{}, ErrValidationPartialCredentials
	}

	user := models.User{DeviceID: request.DeviceID}
	if hasEmail {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		hashString := string(hash)
		user.Email = request.Email
		user.PasswordHash = &hashString
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDeviceAlreadyRegistered) {
			existingUser, findErr := a.userRepository.FindUserByDeviceID(ctx, request.DeviceID)
			if findErr != nil {
				log.Err(findErr).Str("device_id", request.DeviceID).Msg("user search by device ID failed")
				return models.User{}, fmt.Errorf("user search by device ID failed: %w", findErr)
			}

			log.Info().Int64("id", existingUser.UserID).Msg("device already registered, returning existing account")
			return existingUser, nil
		}

		log.Err(err).Str("device_id", request.DeviceID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing email account.
//
// It looks up the account by email and compares the supplied password against
// the stored bcrypt hash. When the email is unknown a dummy hash comparison is
// still performed so that the response time does not reveal whether the
// account exists.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongCredentials if the email is unknown, the account has no
//     password, or the password does not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Msg("login with empty email or password")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyBcryptHash, []byte(request.Password))
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", request.Email).Msg("login for unknown email")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.PasswordHash == nil {
		_ = bcrypt.CompareHashAndPassword(dummyBcryptHash, []byte(request.Password))
		log.Error().Int64("id", foundUser.UserID).Msg("login for account without password")
		return models.User{}, ErrWrongCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
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
