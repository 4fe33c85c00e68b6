// Package adapter provides the HTTP client used by blogctl to talk to an
// inkwell server. It wraps resty, keeps the session token between calls, and
// maps HTTP statuses back to the client-side sentinel errors.
package adapter

import (
	"context"

	"github.com/avolkov/inkwell/models"
)

// ServerAdapter is the client-side view of the inkwell HTTP API.
type ServerAdapter interface {
	SignUp(ctx context.Context, creds models.CredentialsRequest) error
	Login(ctx context.Context, creds models.CredentialsRequest) error
	Logout(ctx context.Context) error

	Publish(ctx context.Context, req models.ArticleRequest) (models.Article, error)
	Edit(ctx context.Context, articleID int64, req models.ArticleRequest) (models.Article, error)
	Remove(ctx context.Context, articleID int64) error
	ListOwn(ctx context.Context) ([]models.ArticleSummary, error)

	ViewPublic(ctx context.Context, articleID int64) (models.Article, error)
	ListByAuthor(ctx context.Context, handle string) ([]models.Article, error)

	// Token returns the session token held after a successful login, empty
	// otherwise.
	Token() string
	// SetToken installs a previously saved session token.
	SetToken(token string)
}
