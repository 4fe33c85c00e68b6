// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/inkwell/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validCredentials() models.CredentialsRequest {
	return models.CredentialsRequest{Handle: "alice_01", Secret: "longenough"}
}

func validArticle() models.ArticleRequest {
	return models.ArticleRequest{Title: "First post", Date: "2026-08-28", Body: "hello"}
}

// ---------------------------------------------------------------------------
// TestNewContentValidator
// ---------------------------------------------------------------------------

func TestNewContentValidator(t *testing.T) {
	v := NewContentValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("credentials by value and pointer", func(t *testing.T) {
		creds := validCredentials()
		assert.NoError(t, v.Validate(ctx, creds))
		assert.NoError(t, v.Validate(ctx, &creds))
	})

	t.Run("article by value and pointer", func(t *testing.T) {
		req := validArticle()
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validCredentials(), "nonsense")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	t.Run("handle too short", func(t *testing.T) {
		creds := validCredentials()
		creds.Handle = "ab"
		require.ErrorIs(t, v.Validate(ctx, creds), ErrInvalidHandle)
	})

	t.Run("handle too long", func(t *testing.T) {
		creds := validCredentials()
		creds.Handle = strings.Repeat("a", 33)
		require.ErrorIs(t, v.Validate(ctx, creds), ErrInvalidHandle)
	})

	t.Run("handle with forbidden characters", func(t *testing.T) {
		for _, handle := range []string{"with space", "semi;colon", "quo'te", "da-sh", "<script>"} {
			creds := validCredentials()
			creds.Handle = handle
			assert.ErrorIs(t, v.Validate(ctx, creds), ErrInvalidHandle, handle)
		}
	})

	t.Run("handle boundary lengths accepted", func(t *testing.T) {
		for _, handle := range []string{"abc", strings.Repeat("a", 32), "A_1"} {
			creds := validCredentials()
			creds.Handle = handle
			assert.NoError(t, v.Validate(ctx, creds), handle)
		}
	})

	t.Run("secret of seven rejected, eight accepted", func(t *testing.T) {
		creds := validCredentials()

		creds.Secret = strings.Repeat("x", 7)
		require.ErrorIs(t, v.Validate(ctx, creds), ErrShortSecret)

		creds.Secret = strings.Repeat("x", 8)
		require.NoError(t, v.Validate(ctx, creds))
	})

	t.Run("scoped to secret only", func(t *testing.T) {
		creds := models.CredentialsRequest{Handle: "bad handle", Secret: "longenough"}
		require.NoError(t, v.Validate(ctx, creds, FieldSecret))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Article
// ---------------------------------------------------------------------------

func TestValidate_Article(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	t.Run("blank title", func(t *testing.T) {
		req := validArticle()
		req.Title = "   "
		require.ErrorIs(t, v.Validate(ctx, req), ErrEmptyTitle)
	})

	t.Run("blank body", func(t *testing.T) {
		req := validArticle()
		req.Body = ""
		require.ErrorIs(t, v.Validate(ctx, req), ErrEmptyBody)
	})

	t.Run("malformed dates", func(t *testing.T) {
		for _, date := range []string{"", "28-08-2026", "2026/08/28", "2026-13-01", "yesterday"} {
			req := validArticle()
			req.Date = date
			assert.ErrorIs(t, v.Validate(ctx, req), ErrInvalidDate, date)
		}
	})

	t.Run("scoped to title only ignores bad date", func(t *testing.T) {
		req := models.ArticleRequest{Title: "ok", Date: "not-a-date", Body: ""}
		require.NoError(t, v.Validate(ctx, req, FieldTitle))
	})
}

// ---------------------------------------------------------------------------
// TestValidHandle
// ---------------------------------------------------------------------------

func TestValidHandle(t *testing.T) {
	assert.True(t, ValidHandle("alice_01"))
	assert.False(t, ValidHandle(""))
	assert.False(t, ValidHandle("alice!"))
}
