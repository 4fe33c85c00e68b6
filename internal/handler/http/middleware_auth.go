// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package http

import (
	"context"
	"net/http"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/utils"
)

// auth enforces session authentication for owner-scoped routes.
//
// The session token is taken from the inkwell_session cookie or, failing
// that, from a Bearer "Authorization" header. The token is validated by
// [service.AuthService.Authenticate], which checks signature, issuer, expiry
// and the existence of the server-side session record. On success the
// authenticated account id lands in the request context under
// [utils.AccountIDCtxKey].
//
// Requests without a usable token are rejected with 401; a browser client is
// expected to treat that as its redirect-to-login signal.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx := r.Context()
		accountID, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			writeError(w, r, http.StatusUnauthorized, "session is expired or invalid")
			return
		}

		// Downstream handlers read the account id from the context instead
		// of re-validating the token.
		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, accountID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest extracts the raw session token, preferring the
// session cookie and falling back to the "Authorization" header.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionToken] — neither a cookie nor a header is present.
//   - [ErrInvalidAuthorizationHeader] — the header exists but is not of the
//     "Bearer <token>" form.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
