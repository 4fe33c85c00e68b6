// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/store"
	"github.com/avolkov/inkwell/internal/utils"
	"github.com/avolkov/inkwell/internal/validators"
	"github.com/avolkov/inkwell/models"
)

// dummySecretHash is a structurally valid bcrypt hash compared against when
// the handle does not exist, so that a failed lookup costs the same as a
// failed secret comparison.
const dummySecretHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of [AuthService]. It verifies
// credentials against the account repository, maintains server-side session
// records, and issues the signed tokens that carry session identity to the
// client.
type authService struct {
	// accounts is the data-access layer for account records.
	accounts store.AccountRepository

	// sessions is the data-access layer for server-side session records.
	sessions store.SessionRepository

	// validator checks submitted credentials before any hashing happens.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// sessionDuration controls both the token's exp claim and the
	// server-side session expiry.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accounts store.AccountRepository, sessions store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		accounts:        accounts,
		sessions:        sessions,
		validator:       validators.NewContentValidator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// SignUp creates a new account.
//
// The handle must match the allow-listed character class (alphanumeric plus
// underscore, 3–32 characters) and the secret must be at least eight
// characters; both are checked before any hashing happens. The secret is
// bcrypt-hashed and the plaintext discarded.
//
// Returns the persisted account or:
//   - ErrInvalidInput naming the violated rule.
//   - store.ErrHandleAlreadyExists when the handle is taken; the UNIQUE
//     constraint does the detection, so concurrent signups cannot race past
//     a pre-check.
func (a *authService) SignUp(ctx context.Context, creds models.CredentialsRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Err(err).Str("handle", html.EscapeString(creds.Handle)).Msg("credentials rejected")
		return models.Account{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	secretHash, err := bcrypt.GenerateFromPassword([]byte(creds.Secret), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("handle", creds.Handle).Msg("secret hashing failed")
		return models.Account{}, fmt.Errorf("secret hashing failed: %w", err)
	}

	registered, err := a.accounts.CreateAccount(ctx, models.Account{
		Handle:     creds.Handle,
		SecretHash: secretHash,
	})
	if err != nil {
		log.Err(err).Str("handle", creds.Handle).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing account and opens a session.
//
// Empty fields fail fast with ErrInvalidInput. Every other failure — unknown
// handle, wrong secret — collapses into the single ErrInvalidCredentials so
// that responses never disclose which half was wrong; an unknown handle
// still pays for a full bcrypt comparison to keep timing uniform.
func (a *authService) Login(ctx context.Context, creds models.CredentialsRequest) (models.Account, models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Handle == "" || creds.Secret == "" {
		return models.Account{}, models.Token{}, fmt.Errorf("%w: handle and secret are required", ErrInvalidInput)
	}

	// Untrusted input: escape before the handle can reach any reflected
	// message or log line. A handle that changes under escaping cannot
	// belong to a registered account.
	sanitized := html.EscapeString(creds.Handle)
	if sanitized != creds.Handle || !validators.ValidHandle(creds.Handle) {
		_ = bcrypt.CompareHashAndPassword([]byte(dummySecretHash), []byte(creds.Secret))
		return models.Account{}, models.Token{}, ErrInvalidCredentials
	}

	account, err := a.accounts.FindAccountByHandle(ctx, creds.Handle)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummySecretHash), []byte(creds.Secret))
			return models.Account{}, models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("account lookup failed")
		return models.Account{}, models.Token{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(account.SecretHash, []byte(creds.Secret)); err != nil {
		log.Warn().Str("handle", account.Handle).Msg("wrong secret")
		return models.Account{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.openSession(ctx, account)
	if err != nil {
		log.Err(err).Str("handle", account.Handle).Msg("session creation failed")
		return models.Account{}, models.Token{}, err
	}

	return account, token, nil
}

// openSession creates the server-side session record and signs its token.
func (a *authService) openSession(ctx context.Context, account models.Account) (models.Token, error) {
	now := time.Now().UTC()
	session := models.Session{
		SessionID: uuid.NewString(),
		AccountID: account.AccountID,
		ExpiresAt: now.Add(a.sessionDuration),
		CreatedAt: now,
	}

	if err := a.sessions.CreateSession(ctx, session); err != nil {
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	token, err := utils.GenerateSessionToken(a.tokenIssuer, account.AccountID, session.SessionID, a.sessionDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("session token signing failed: %w", err)
	}

	return token, nil
}

// Logout revokes the session behind the given token. A token that fails
// validation or references a session that is already gone is ignored;
// logout always succeeds from the caller's point of view.
func (a *authService) Logout(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Msg("logout with invalid token ignored")
		return nil
	}

	if err = a.sessions.DeleteSession(ctx, token.SessionID); err != nil {
		log.Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authenticate validates a session token end to end: signature, issuer and
// expiry on the token itself, then existence and server-side expiry of the
// session record it references. Any validation failure is normalised to
// ErrSessionInvalid so that callers need not inspect low-level JWT errors.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return 0, ErrSessionInvalid
	}

	session, err := a.sessions.FindSession(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return 0, ErrSessionInvalid
		}

		log.Err(err).Msg("session lookup failed")
		return 0, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.AccountID != token.AccountID || session.Expired(time.Now().UTC()) {
		return 0, ErrSessionInvalid
	}

	return session.AccountID, nil
}

// SweepExpiredSessions removes every session past its server-side expiry.
// Invoked periodically by the server's background ticker.
func (a *authService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return a.sessions.DeleteExpiredSessions(ctx, time.Now().UTC())
}
