package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/store"
	"github.com/avolkov/inkwell/internal/validators"
	"github.com/avolkov/inkwell/models"
)

// articleService is the concrete implementation of [ArticleService]. It
// validates article input and delegates persistence to the article
// repository, whose owner-scoped predicates enforce that mutations only
// ever touch the caller's own rows.
type articleService struct {
	articles  store.ArticleRepository
	accounts  store.AccountRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewArticleService constructs an ArticleService wired to the given
// repositories.
func NewArticleService(articles store.ArticleRepository, accounts store.AccountRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articles:  articles,
		accounts:  accounts,
		validator: validators.NewContentValidator(),
		logger:    logger,
	}
}

// validateArticleRequest checks the raw form fields shared by publish and
// edit and returns the parsed publish date.
func (s *articleService) validateArticleRequest(ctx context.Context, req models.ArticleRequest) (models.Date, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Date{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return models.Date{}, fmt.Errorf("%w: %v", ErrInvalidInput, validators.ErrInvalidDate)
	}

	return date, nil
}

// Publish creates a new article owned by ownerID, which the transport layer
// resolved from the authenticated session.
func (s *articleService) Publish(ctx context.Context, ownerID int64, req models.ArticleRequest) (models.Article, error) {
	log := logger.FromContext(ctx)

	date, err := s.validateArticleRequest(ctx, req)
	if err != nil {
		return models.Article{}, err
	}

	created, err := s.articles.InsertArticle(ctx, models.Article{
		Title:       req.Title,
		PublishDate: date,
		Body:        req.Body,
		OwnerID:     ownerID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("article insert failed")
		return models.Article{}, fmt.Errorf("article insert failed: %w", err)
	}

	return created, nil
}

// Edit updates title, date and body of the caller's own article. When the
// scoped update matches no row — the article does not exist, or it belongs
// to another owner — the merged ErrNotFoundOrForbidden comes back and the
// stored article is untouched.
func (s *articleService) Edit(ctx context.Context, ownerID, articleID int64, req models.ArticleRequest) (models.Article, error) {
	log := logger.FromContext(ctx)

	date, err := s.validateArticleRequest(ctx, req)
	if err != nil {
		return models.Article{}, err
	}

	updated, err := s.articles.UpdateArticleScoped(ctx, models.Article{
		ArticleID:   articleID,
		Title:       req.Title,
		PublishDate: date,
		Body:        req.Body,
		OwnerID:     ownerID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("article_id", articleID).Msg("article update failed")
		return models.Article{}, fmt.Errorf("article update failed: %w", err)
	}
	if !updated {
		return models.Article{}, ErrNotFoundOrForbidden
	}

	return s.articles.GetArticleScoped(ctx, articleID, ownerID)
}

// Remove deletes the caller's own article. Removing an absent or foreign
// article reports ErrNotFoundOrForbidden rather than failing differently,
// so repeated removals are harmless.
func (s *articleService) Remove(ctx context.Context, ownerID, articleID int64) error {
	log := logger.FromContext(ctx)

	deleted, err := s.articles.DeleteArticleScoped(ctx, articleID, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("article_id", articleID).Msg("article delete failed")
		return fmt.Errorf("article delete failed: %w", err)
	}
	if !deleted {
		return ErrNotFoundOrForbidden
	}

	return nil
}

// ListOwn returns the dashboard summaries of the caller's own articles.
func (s *articleService) ListOwn(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error) {
	return s.articles.ListArticleSummaries(ctx, ownerID)
}

// ViewPublic returns a single article for guest reading. No authentication
// is involved; absent ids yield store.ErrArticleNotFound.
func (s *articleService) ViewPublic(ctx context.Context, articleID int64) (models.Article, error) {
	return s.articles.GetArticle(ctx, articleID)
}

// ListByAuthor returns all articles of the author with the given handle for
// guest browsing. An unknown handle yields store.ErrAccountNotFound.
func (s *articleService) ListByAuthor(ctx context.Context, handle string) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	account, err := s.accounts.FindAccountByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return nil, err
		}

		log.Err(err).Msg("author lookup failed")
		return nil, fmt.Errorf("author lookup failed: %w", err)
	}

	return s.articles.ListArticlesByOwner(ctx, account.AccountID)
}
