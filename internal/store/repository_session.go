package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// A session row is the server-side half of an issued token: deleting the row
// revokes the token no matter how long its signature stays valid.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session record.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(session.TableName()).
		Columns("session_id", "account_id", "expires_at", "created_at").
		Values(session.SessionID, session.AccountID, session.ExpiresAt, session.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building insert query")
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error executing insert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSession retrieves a session row by id. Absent rows (expired and swept,
// or revoked by logout) yield [ErrSessionNotFound].
func (r *sessionRepository) FindSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("session_id", "account_id", "expires_at", "created_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error building select query")
		return models.Session{}, fmt.Errorf("error building select query: %w", err)
	}

	var found models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.SessionID, &found.AccountID, &found.ExpiresAt, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteSession removes a session row. Deleting an absent session is not an
// error; logout stays idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error building delete query")
		return fmt.Errorf("error building delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpiredSessions sweeps every session whose expiry predates now and
// returns the number of rows removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Session{}.TableName()).
		Where(sq.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error building delete query")
		return 0, fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}
