package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHandleAlreadyExists is returned when an attempt to register a new
	// account fails because the handle is already taken. Detection relies on
	// the database's UNIQUE constraint, never on a racy pre-check.
	ErrHandleAlreadyExists = errors.New("handle already exists")

	// ErrAccountNotFound is returned when a lookup by handle produces no row.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrArticleNotFound is returned when an article lookup produces no row.
	// Owner-scoped lookups return it both for absent articles and for
	// articles owned by someone else; the two cases are indistinguishable on
	// purpose.
	ErrArticleNotFound = errors.New("article was not found")

	// ErrSessionNotFound is returned when a session row is absent, typically
	// because it expired and was swept or the user logged out.
	ErrSessionNotFound = errors.New("session was not found")
)
