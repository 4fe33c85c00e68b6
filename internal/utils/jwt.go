// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/inkwell/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token.
//
// The token carries the following registered claims:
//   - Issuer    (iss): identifies the issuing service
//   - Subject   (sub): the account ID encoded as a string
//   - ID        (jti): the server-side session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// All parameters are required; an error is returned if any is empty or zero.
func GenerateSessionToken(issuer string, accountID int64, sessionID string, duration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionID == "" || duration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		AccountID:    accountID,
		SessionID:    sessionID,
	}, nil
}

// ValidateAndParseSessionToken validates the given token string and extracts
// its claims.
//
// Validation includes:
//   - signature verification with the provided sign key
//   - issuer (iss) claim check against tokenIssuer
//   - expiration (exp) claim check
//   - subject (sub) and ID (jti) claim presence
//
// Returns a [models.Token] with AccountID and SessionID populated, or an
// error if validation fails or claims are missing.
func ValidateAndParseSessionToken(tokenString, signKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected token claims type")
	}

	accountIDStr, err := claims.GetSubject()
	if err != nil || accountIDStr == "" {
		return models.Token{}, errors.New("empty subject in session token")
	}

	accountID, err := strconv.ParseInt(accountIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error converting subject to account id: %w", err)
	}

	if claims.RegisteredClaims.ID == "" {
		return models.Token{}, errors.New("empty session id in token")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		AccountID:    accountID,
		SessionID:    claims.RegisteredClaims.ID,
	}, nil
}

// ParseBearerToken extracts the token part from an Authorization header of
// the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
