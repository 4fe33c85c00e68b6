package models

import "time"

// Account represents a registered admin identity that owns articles.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer.
	AccountID int64 `json:"-"`

	// Handle is the unique, case-sensitive public username. Restricted to
	// alphanumeric characters and underscore at signup time.
	Handle string `json:"handle"`

	// SecretHash is the bcrypt hash of the account password. It is never
	// serialized and the plaintext secret is never stored anywhere.
	SecretHash []byte `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
