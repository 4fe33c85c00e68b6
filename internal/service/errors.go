package service

import "errors"

// User-facing outcome errors. All of them are expected results of normal
// operation; none should ever crash a request. Callers match with
// [errors.Is] and map them to transport responses.
var (
	// ErrInvalidInput covers malformed or missing fields: empty credentials,
	// a handle outside the allowed character class, a secret below the
	// minimum length, an empty title or body, an unparseable date. The
	// wrapped message names the specific reason.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is the single, deliberately generic login
	// failure. A wrong secret and an unknown handle both collapse into it so
	// that nothing distinguishes the two cases.
	ErrInvalidCredentials = errors.New("invalid handle or secret")

	// ErrSessionInvalid is returned when a presented session token fails
	// signature, issuer or expiry validation, or when its server-side
	// session record is gone (logged out or swept).
	ErrSessionInvalid = errors.New("session is expired or invalid")

	// ErrNotFoundOrForbidden is the merged outcome for every owner-scoped
	// article operation that matched no row. "Does not exist" and "belongs
	// to someone else" are indistinguishable on purpose, to prevent probing
	// for other owners' data.
	ErrNotFoundOrForbidden = errors.New("article not found or no permission")
)
