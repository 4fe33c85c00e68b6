// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

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

// articleRepository is the SQL-backed implementation of [ArticleRepository].
//
// Scoped operations (get/update/delete) always include the owner id in the
// row predicate; a wrong id and a wrong owner produce the same "no row"
// outcome, so nothing about other owners' data leaks through response
// shapes.
type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

const articleColumns = "article_id, title, publish_date, body, owner_id, created_at, updated_at"

// InsertArticle persists a new article and returns it with server-assigned
// fields (ArticleID, CreatedAt, UpdatedAt). The owner id comes from the
// authenticated session upstream, never from client input.
func (r *articleRepository) InsertArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.Builder().
		Insert(article.TableName()).
		Columns("title", "publish_date", "body", "owner_id", "created_at", "updated_at").
		Values(article.Title, article.PublishDate, article.Body, article.OwnerID, now, now).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.InsertArticle").Msg("error building insert query")
		return models.Article{}, fmt.Errorf("error building insert query: %w", err)
	}

	var created models.Article
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanArticle(row, &created); err != nil {
		log.Err(err).Str("func", "*articleRepository.InsertArticle").Msg("error: scanning error")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListArticlesByOwner returns all articles of the given owner as full
// records, newest publish date first. This is the guest-facing per-author
// listing, so it requires no authentication upstream.
func (r *articleRepository) ListArticlesByOwner(ctx context.Context, ownerID int64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("article_id", "title", "publish_date", "body", "owner_id", "created_at", "updated_at").
		From(models.Article{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("publish_date DESC", "article_id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticlesByOwner").Msg("error building select query")
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticlesByOwner").Msg("error executing select query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var a models.Article
		if err = scanArticle(rows, &a); err != nil {
			log.Err(err).Str("func", "*articleRepository.ListArticlesByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		articles = append(articles, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return articles, nil
}

// ListArticleSummaries returns the lightweight {id, title, date} listing for
// the owner's dashboard.
func (r *articleRepository) ListArticleSummaries(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("article_id", "title", "publish_date").
		From(models.Article{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("publish_date DESC", "article_id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticleSummaries").Msg("error building select query")
		return nil, fmt.Errorf("error building select query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.ListArticleSummaries").Msg("error executing select query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.ArticleSummary, 0)
	for rows.Next() {
		var s models.ArticleSummary
		if err = rows.Scan(&s.ArticleID, &s.Title, &s.PublishDate); err != nil {
			log.Err(err).Str("func", "*articleRepository.ListArticleSummaries").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return summaries, nil
}

// GetArticle retrieves a single article by id with no ownership predicate.
// This is the guest-facing single-article view.
func (r *articleRepository) GetArticle(ctx context.Context, articleID int64) (models.Article, error) {
	return r.getArticle(ctx, sq.Eq{"article_id": articleID})
}

// GetArticleScoped retrieves a single article by id and owner. A row that
// exists but belongs to a different owner yields [ErrArticleNotFound], not a
// distinct "forbidden" signal.
func (r *articleRepository) GetArticleScoped(ctx context.Context, articleID, ownerID int64) (models.Article, error) {
	return r.getArticle(ctx, sq.Eq{"article_id": articleID, "owner_id": ownerID})
}

func (r *articleRepository) getArticle(ctx context.Context, predicate sq.Eq) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("article_id", "title", "publish_date", "body", "owner_id", "created_at", "updated_at").
		From(models.Article{}.TableName()).
		Where(predicate).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.getArticle").Msg("error building select query")
		return models.Article{}, fmt.Errorf("error building select query: %w", err)
	}

	var found models.Article
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanArticle(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrArticleNotFound
		}

		log.Err(err).Str("func", "*articleRepository.getArticle").Msg("error: scanning error")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateArticleScoped updates title, publish date and body of the article
// matching both id and owner. It reports false when no row matched, which
// covers "does not exist" and "owned by someone else" alike. The owner
// column itself is never part of the SET clause.
func (r *articleRepository) UpdateArticleScoped(ctx context.Context, article models.Article) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(article.TableName()).
		Set("title", article.Title).
		Set("publish_date", article.PublishDate).
		Set("body", article.Body).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"article_id": article.ArticleID, "owner_id": article.OwnerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.UpdateArticleScoped").Msg("error building update query")
		return false, fmt.Errorf("error building update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.UpdateArticleScoped").Msg("error executing update")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}

// DeleteArticleScoped deletes the article matching both id and owner and
// reports whether a row was removed. Calling it twice is harmless: the
// second call simply reports false.
func (r *articleRepository) DeleteArticleScoped(ctx context.Context, articleID, ownerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Article{}.TableName()).
		Where(sq.Eq{"article_id": articleID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.DeleteArticleScoped").Msg("error building delete query")
		return false, fmt.Errorf("error building delete query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*articleRepository.DeleteArticleScoped").Msg("error executing delete")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner, a *models.Article) error {
	return row.Scan(
		&a.ArticleID,
		&a.Title,
		&a.PublishDate,
		&a.Body,
		&a.OwnerID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}
