package store

import (
	"context"

	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/logger"
)

// Storages bundles every repository the services need, all sharing one
// database connection.
type Storages struct {
	Accounts AccountRepository
	Articles ArticleRepository
	Sessions SessionRepository

	db *DB
}

// NewStorages connects to the configured database, runs migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Accounts: NewAccountRepository(db, log),
		Articles: NewArticleRepository(db, log),
		Sessions: NewSessionRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
