package store

import (
	"context"
	"time"

	"github.com/avolkov/inkwell/models"
)

// AccountRepository persists admin accounts. The handle is the only lookup
// key; accounts are never mutated or deleted once created.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByHandle(ctx context.Context, handle string) (models.Account, error)
}

// ArticleRepository persists articles. Mutating operations and the owner
// listing take the owner id as part of the row predicate; the repository
// never trusts a client-supplied owner value.
type ArticleRepository interface {
	InsertArticle(ctx context.Context, article models.Article) (models.Article, error)
	ListArticlesByOwner(ctx context.Context, ownerID int64) ([]models.Article, error)
	ListArticleSummaries(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error)
	GetArticle(ctx context.Context, articleID int64) (models.Article, error)
	GetArticleScoped(ctx context.Context, articleID, ownerID int64) (models.Article, error)
	UpdateArticleScoped(ctx context.Context, article models.Article) (bool, error)
	DeleteArticleScoped(ctx context.Context, articleID, ownerID int64) (bool, error)
}

// SessionRepository persists server-side session records.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
