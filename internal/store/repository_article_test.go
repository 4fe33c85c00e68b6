package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/models"
)

const (
	insertArticleSQL = `INSERT INTO articles (title,publish_date,body,owner_id,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING article_id, title, publish_date, body, owner_id, created_at, updated_at`

	selectArticlesByOwnerSQL = `SELECT article_id, title, publish_date, body, owner_id, created_at, updated_at FROM articles WHERE owner_id = $1 ORDER BY publish_date DESC, article_id DESC`
	selectSummariesSQL       = `SELECT article_id, title, publish_date FROM articles WHERE owner_id = $1 ORDER BY publish_date DESC, article_id DESC`

	selectArticleSQL       = `SELECT article_id, title, publish_date, body, owner_id, created_at, updated_at FROM articles WHERE article_id = $1`
	selectArticleScopedSQL = `SELECT article_id, title, publish_date, body, owner_id, created_at, updated_at FROM articles WHERE article_id = $1 AND owner_id = $2`

	updateArticleScopedSQL = `UPDATE articles SET title = $1, publish_date = $2, body = $3, updated_at = $4 WHERE article_id = $5 AND owner_id = $6`
	deleteArticleScopedSQL = `DELETE FROM articles WHERE article_id = $1 AND owner_id = $2`
)

var articleTestColumns = []string{"article_id", "title", "publish_date", "body", "owner_id", "created_at", "updated_at"}

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestInsertArticle(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	date := mustDate(t, "2026-08-28")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(insertArticleSQL)).
			WithArgs("First post", date.Time, "hello", int64(42), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(articleTestColumns).
				AddRow(int64(1), "First post", date.Time, "hello", int64(42), now, now))

		created, err := repo.InsertArticle(testContext(), models.Article{
			Title:       "First post",
			PublishDate: date,
			Body:        "hello",
			OwnerID:     42,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ArticleID)
		assert.Equal(t, "First post", created.Title)
		assert.Equal(t, "2026-08-28", created.PublishDate.String())
		assert.Equal(t, int64(42), created.OwnerID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(insertArticleSQL)).
			WillReturnError(errors.New("disk full"))

		_, err := repo.InsertArticle(testContext(), models.Article{
			Title:       "First post",
			PublishDate: date,
			Body:        "hello",
			OwnerID:     42,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected DB error")
	})
}

func TestListArticlesByOwner(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	newer := mustDate(t, "2026-08-28")
	older := mustDate(t, "2025-01-01")

	t.Run("returns rows in query order", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectArticlesByOwnerSQL)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(articleTestColumns).
				AddRow(int64(2), "Newer", newer.Time, "b", int64(42), now, now).
				AddRow(int64(1), "Older", older.Time, "a", int64(42), now, now))

		articles, err := repo.ListArticlesByOwner(testContext(), 42)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "Newer", articles[0].Title)
		assert.Equal(t, "Older", articles[1].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows yields empty slice, not nil", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectArticlesByOwnerSQL)).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(articleTestColumns))

		articles, err := repo.ListArticlesByOwner(testContext(), 42)
		require.NoError(t, err)
		require.NotNil(t, articles)
		assert.Empty(t, articles)
	})
}

func TestListArticleSummaries(t *testing.T) {
	date := mustDate(t, "2026-08-28")

	db, mock := newTestDB(t)
	repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(selectSummariesSQL)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "title", "publish_date"}).
			AddRow(int64(3), "Latest", date.Time))

	summaries, err := repo.ListArticleSummaries(testContext(), 42)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(3), summaries[0].ArticleID)
	assert.Equal(t, "Latest", summaries[0].Title)
	assert.Equal(t, "2026-08-28", summaries[0].PublishDate.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArticle(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	date := mustDate(t, "2026-08-28")

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectArticleSQL)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(articleTestColumns).
				AddRow(int64(1), "First post", date.Time, "hello", int64(42), now, now))

		found, err := repo.GetArticle(testContext(), 1)
		require.NoError(t, err)
		assert.Equal(t, "First post", found.Title)
		assert.Equal(t, int64(42), found.OwnerID)
	})

	t.Run("absent id maps to ErrArticleNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectArticleSQL)).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetArticle(testContext(), 99)
		require.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestGetArticleScoped(t *testing.T) {
	t.Run("foreign owner maps to ErrArticleNotFound", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(selectArticleScopedSQL)).
			WithArgs(int64(1), int64(43)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetArticleScoped(testContext(), 1, 43)
		require.ErrorIs(t, err, ErrArticleNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateArticleScoped(t *testing.T) {
	date := mustDate(t, "2026-08-28")
	article := models.Article{
		ArticleID:   1,
		Title:       "Edited",
		PublishDate: date,
		Body:        "new body",
		OwnerID:     42,
	}

	t.Run("matched row reports true", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(updateArticleScopedSQL)).
			WithArgs("Edited", date.Time, "new body", sqlmock.AnyArg(), int64(1), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.UpdateArticleScoped(testContext(), article)
		require.NoError(t, err)
		assert.True(t, updated)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matched row reports false", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(updateArticleScopedSQL)).
			WithArgs("Edited", date.Time, "new body", sqlmock.AnyArg(), int64(1), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.UpdateArticleScoped(testContext(), article)
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(updateArticleScopedSQL)).
			WillReturnError(errors.New("deadlock"))

		_, err := repo.UpdateArticleScoped(testContext(), article)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected DB error")
	})
}

func TestDeleteArticleScoped(t *testing.T) {
	t.Run("matched row reports true", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(deleteArticleScopedSQL)).
			WithArgs(int64(1), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeleteArticleScoped(testContext(), 1, 42)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("repeat delete reports false", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewArticleRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(deleteArticleScopedSQL)).
			WithArgs(int64(1), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeleteArticleScoped(testContext(), 1, 42)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
