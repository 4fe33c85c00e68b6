package service

import (
	"context"

	"github.com/avolkov/inkwell/models"
)

// AuthService owns the credential and session lifecycle: signup, login,
// logout, and the authentication check every owner-scoped operation runs
// through.
type AuthService interface {
	// SignUp validates and registers a new account. The plaintext secret is
	// hashed and discarded; it never reaches the store.
	SignUp(ctx context.Context, creds models.CredentialsRequest) (models.Account, error)

	// Login verifies credentials and, on success, creates a server-side
	// session and returns its signed token.
	Login(ctx context.Context, creds models.CredentialsRequest) (models.Account, models.Token, error)

	// Logout revokes the session behind the given token. Unknown or already
	// revoked tokens are not an error.
	Logout(ctx context.Context, tokenString string) error

	// Authenticate validates a session token and returns the bound account
	// id. Any failure yields ErrSessionInvalid.
	Authenticate(ctx context.Context, tokenString string) (int64, error)

	// SweepExpiredSessions removes sessions past their server-side expiry.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

// ArticleService is the CRUD surface over articles. Every mutating operation
// takes the authenticated owner id resolved by [AuthService]; the owner is
// never read from client input.
type ArticleService interface {
	Publish(ctx context.Context, ownerID int64, req models.ArticleRequest) (models.Article, error)
	Edit(ctx context.Context, ownerID, articleID int64, req models.ArticleRequest) (models.Article, error)
	Remove(ctx context.Context, ownerID, articleID int64) error
	ListOwn(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error)

	// Guest-facing reads, no authentication involved.
	ViewPublic(ctx context.Context, articleID int64) (models.Article, error)
	ListByAuthor(ctx context.Context, handle string) ([]models.Article, error)
}
