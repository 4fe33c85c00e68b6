package models

import "time"

// Session is the server-side record behind an issued session token.
// The client never sees this struct directly; it holds a signed JWT whose
// "jti" claim is SessionID. Deleting the row revokes the token regardless
// of its remaining JWT lifetime.
type Session struct {
	// SessionID is an opaque identifier (UUID) embedded in the token's
	// jti claim.
	SessionID string `json:"-"`

	// AccountID is the authenticated account this session is bound to.
	AccountID int64 `json:"-"`

	// ExpiresAt is the server-side expiry. Sessions past this instant are
	// rejected even if the JWT itself has not expired yet.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is the login timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session's server-side expiry has passed.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
