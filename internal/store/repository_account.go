package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles account creation and lookup against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully
// populated [models.Account] with server-assigned fields (AccountID,
// CreatedAt).
//
// The INSERT carries a RETURNING clause so the caller receives the canonical
// database representation of the new account in a single round trip.
//
// Error handling:
//   - unique-constraint violation on handle → [ErrHandleAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(account.TableName()).
		Columns("handle", "secret_hash").
		Values(account.Handle, account.SecretHash).
		Suffix("RETURNING account_id, handle, secret_hash, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error building insert query")
		return models.Account{}, fmt.Errorf("error building insert query: %w", err)
	}

	var created models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&created.AccountID, &created.Handle, &created.SecretHash, &created.CreatedAt); err != nil {
		if r.db.IsUniqueViolation(err) {
			return models.Account{}, ErrHandleAlreadyExists
		}

		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAccountByHandle retrieves the account whose handle matches exactly.
// Handles are case-sensitive; the query performs no normalisation.
//
// Error handling:
//   - no matching row → [ErrAccountNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindAccountByHandle(ctx context.Context, handle string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("account_id", "handle", "secret_hash", "created_at").
		From(models.Account{}.TableName()).
		Where("handle = ?", handle).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByHandle").Msg("error building select query")
		return models.Account{}, fmt.Errorf("error building select query: %w", err)
	}

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.AccountID, &found.Handle, &found.SecretHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.FindAccountByHandle").Msg("error: scanning error")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
