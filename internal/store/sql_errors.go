package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ConstraintClassifier abstracts engine-specific driver errors so that the
// repositories can map a failed INSERT to a domain sentinel without
// depending on either driver directly.
type ConstraintClassifier interface {
	// IsUniqueViolation reports whether err represents a violated UNIQUE
	// constraint.
	IsUniqueViolation(err error) bool
}

// PostgresConstraintClassifier implements [ConstraintClassifier] for the pgx
// driver by inspecting the SQLSTATE code carried by *pgconn.PgError.
type PostgresConstraintClassifier struct{}

func NewPostgresConstraintClassifier() *PostgresConstraintClassifier {
	return &PostgresConstraintClassifier{}
}

func (c *PostgresConstraintClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

// SQLiteConstraintClassifier implements [ConstraintClassifier] for the
// mattn/go-sqlite3 driver via its extended result codes.
type SQLiteConstraintClassifier struct{}

func NewSQLiteConstraintClassifier() *SQLiteConstraintClassifier {
	return &SQLiteConstraintClassifier{}
}

func (c *SQLiteConstraintClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
