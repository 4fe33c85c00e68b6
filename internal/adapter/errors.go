package adapter

import "errors"

// Client-side sentinel errors mapped from server responses.
var (
	// ErrUnauthorized is returned for 401 responses: missing, expired or
	// revoked session, or rejected credentials.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrConflict is returned for 409 responses, i.e. a taken handle.
	ErrConflict = errors.New("handle already exists")

	// ErrNotFound is returned for 404 responses: an absent article, an
	// unknown author, or an article the caller does not own.
	ErrNotFound = errors.New("not found or no permission")

	// ErrRateLimited is returned for 429 responses on the credential
	// endpoints.
	ErrRateLimited = errors.New("rate limited, retry later")

	// ErrBadRequest is returned for 400 responses; the message carries the
	// server's validation reason.
	ErrBadRequest = errors.New("invalid input")
)
