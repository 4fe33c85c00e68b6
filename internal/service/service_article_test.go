package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/store"
	"github.com/avolkov/inkwell/models"
)

// ─────────────────────────────────────────────
// Mock article repository
// ─────────────────────────────────────────────

type mockArticleRepo struct {
	insertArticleFn        func(ctx context.Context, article models.Article) (models.Article, error)
	listArticlesByOwnerFn  func(ctx context.Context, ownerID int64) ([]models.Article, error)
	listArticleSummariesFn func(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error)
	getArticleFn           func(ctx context.Context, articleID int64) (models.Article, error)
	getArticleScopedFn     func(ctx context.Context, articleID, ownerID int64) (models.Article, error)
	updateArticleScopedFn  func(ctx context.Context, article models.Article) (bool, error)
	deleteArticleScopedFn  func(ctx context.Context, articleID, ownerID int64) (bool, error)
}

func (m *mockArticleRepo) InsertArticle(ctx context.Context, article models.Article) (models.Article, error) {
	return m.insertArticleFn(ctx, article)
}

func (m *mockArticleRepo) ListArticlesByOwner(ctx context.Context, ownerID int64) ([]models.Article, error) {
	return m.listArticlesByOwnerFn(ctx, ownerID)
}

func (m *mockArticleRepo) ListArticleSummaries(ctx context.Context, ownerID int64) ([]models.ArticleSummary, error) {
	return m.listArticleSummariesFn(ctx, ownerID)
}

func (m *mockArticleRepo) GetArticle(ctx context.Context, articleID int64) (models.Article, error) {
	return m.getArticleFn(ctx, articleID)
}

func (m *mockArticleRepo) GetArticleScoped(ctx context.Context, articleID, ownerID int64) (models.Article, error) {
	return m.getArticleScopedFn(ctx, articleID, ownerID)
}

func (m *mockArticleRepo) UpdateArticleScoped(ctx context.Context, article models.Article) (bool, error) {
	return m.updateArticleScopedFn(ctx, article)
}

func (m *mockArticleRepo) DeleteArticleScoped(ctx context.Context, articleID, ownerID int64) (bool, error) {
	return m.deleteArticleScopedFn(ctx, articleID, ownerID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestArticleService(articles store.ArticleRepository, accounts store.AccountRepository) ArticleService {
	if accounts == nil {
		accounts = &mockAccountRepo{}
	}
	return NewArticleService(articles, accounts, logger.Nop())
}

func validArticleRequest() models.ArticleRequest {
	return models.ArticleRequest{Title: "First post", Date: "2026-08-28", Body: "hello"}
}

// ─────────────────────────────────────────────
// Publish
// ─────────────────────────────────────────────

func TestPublish_Success(t *testing.T) {
	articles := &mockArticleRepo{
		insertArticleFn: func(_ context.Context, article models.Article) (models.Article, error) {
			// the owner comes from the session, never from the request body
			assert.Equal(t, int64(42), article.OwnerID)
			article.ArticleID = 1
			return article, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	created, err := svc.Publish(context.Background(), 42, validArticleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ArticleID)
	assert.Equal(t, "First post", created.Title)
	assert.Equal(t, "2026-08-28", created.PublishDate.String())
}

func TestPublish_RejectsInvalidInput(t *testing.T) {
	svc := newTestArticleService(&mockArticleRepo{}, nil)

	cases := map[string]models.ArticleRequest{
		"blank title":    {Title: "  ", Date: "2026-08-28", Body: "hello"},
		"blank body":     {Title: "First post", Date: "2026-08-28", Body: ""},
		"malformed date": {Title: "First post", Date: "28.08.2026", Body: "hello"},
	}
	for name, req := range cases {
		_, err := svc.Publish(context.Background(), 42, req)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

// ─────────────────────────────────────────────
// Edit
// ─────────────────────────────────────────────

func TestEdit_Success(t *testing.T) {
	articles := &mockArticleRepo{
		updateArticleScopedFn: func(_ context.Context, article models.Article) (bool, error) {
			assert.Equal(t, int64(1), article.ArticleID)
			assert.Equal(t, int64(42), article.OwnerID)
			return true, nil
		},
		getArticleScopedFn: func(_ context.Context, articleID, ownerID int64) (models.Article, error) {
			return models.Article{ArticleID: articleID, OwnerID: ownerID, Title: "First post"}, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	updated, err := svc.Edit(context.Background(), 42, 1, validArticleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ArticleID)
}

// TestEdit_ForeignOrAbsentArticle verifies that editing someone else's
// article and editing a nonexistent one are indistinguishable.
func TestEdit_ForeignOrAbsentArticle(t *testing.T) {
	articles := &mockArticleRepo{
		updateArticleScopedFn: func(_ context.Context, _ models.Article) (bool, error) {
			return false, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	_, err := svc.Edit(context.Background(), 42, 999, validArticleRequest())
	require.ErrorIs(t, err, ErrNotFoundOrForbidden)
}

func TestEdit_RejectsInvalidInputBeforeStore(t *testing.T) {
	articles := &mockArticleRepo{
		updateArticleScopedFn: func(_ context.Context, _ models.Article) (bool, error) {
			t.Fatal("store must not be reached with invalid input")
			return false, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	_, err := svc.Edit(context.Background(), 42, 1, models.ArticleRequest{Title: "", Date: "2026-08-28", Body: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// ─────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────

func TestRemove(t *testing.T) {
	t.Run("own article", func(t *testing.T) {
		articles := &mockArticleRepo{
			deleteArticleScopedFn: func(_ context.Context, articleID, ownerID int64) (bool, error) {
				assert.Equal(t, int64(1), articleID)
				assert.Equal(t, int64(42), ownerID)
				return true, nil
			},
		}
		svc := newTestArticleService(articles, nil)

		require.NoError(t, svc.Remove(context.Background(), 42, 1))
	})

	t.Run("foreign or already removed article", func(t *testing.T) {
		articles := &mockArticleRepo{
			deleteArticleScopedFn: func(_ context.Context, _, _ int64) (bool, error) {
				return false, nil
			},
		}
		svc := newTestArticleService(articles, nil)

		err := svc.Remove(context.Background(), 42, 1)
		require.ErrorIs(t, err, ErrNotFoundOrForbidden)
	})
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

func TestListOwn(t *testing.T) {
	articles := &mockArticleRepo{
		listArticleSummariesFn: func(_ context.Context, ownerID int64) ([]models.ArticleSummary, error) {
			assert.Equal(t, int64(42), ownerID)
			return []models.ArticleSummary{{ArticleID: 1, Title: "First post"}}, nil
		},
	}
	svc := newTestArticleService(articles, nil)

	summaries, err := svc.ListOwn(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
}

func TestViewPublic(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		articles := &mockArticleRepo{
			getArticleFn: func(_ context.Context, articleID int64) (models.Article, error) {
				return models.Article{ArticleID: articleID, Title: "First post"}, nil
			},
		}
		svc := newTestArticleService(articles, nil)

		article, err := svc.ViewPublic(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "First post", article.Title)
	})

	t.Run("absent", func(t *testing.T) {
		articles := &mockArticleRepo{
			getArticleFn: func(_ context.Context, _ int64) (models.Article, error) {
				return models.Article{}, store.ErrArticleNotFound
			},
		}
		svc := newTestArticleService(articles, nil)

		_, err := svc.ViewPublic(context.Background(), 999)
		require.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}

func TestListByAuthor(t *testing.T) {
	t.Run("known author", func(t *testing.T) {
		accounts := &mockAccountRepo{
			findAccountByHandleFn: func(_ context.Context, handle string) (models.Account, error) {
				require.Equal(t, "alice", handle)
				return models.Account{AccountID: 42, Handle: "alice"}, nil
			},
		}
		articles := &mockArticleRepo{
			listArticlesByOwnerFn: func(_ context.Context, ownerID int64) ([]models.Article, error) {
				assert.Equal(t, int64(42), ownerID)
				return []models.Article{{ArticleID: 1, OwnerID: 42}}, nil
			},
		}
		svc := newTestArticleService(articles, accounts)

		got, err := svc.ListByAuthor(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("unknown author", func(t *testing.T) {
		accounts := &mockAccountRepo{
			findAccountByHandleFn: func(_ context.Context, _ string) (models.Account, error) {
				return models.Account{}, store.ErrAccountNotFound
			},
		}
		svc := newTestArticleService(&mockArticleRepo{}, accounts)

		_, err := svc.ListByAuthor(context.Background(), "nobody")
		require.ErrorIs(t, err, store.ErrAccountNotFound)
	})
}
