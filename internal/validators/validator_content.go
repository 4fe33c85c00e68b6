package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/avolkov/inkwell/models"
)

// Field names accepted by ContentValidator for scoped validation.
const (
	FieldHandle = "handle"
	FieldSecret = "secret"
	FieldTitle  = "title"
	FieldDate   = "date"
	FieldBody   = "body"
)

// MinSecretLen is the minimum accepted secret length. Seven characters are
// rejected, eight are accepted.
const MinSecretLen = 8

// handlePattern is the allow-listed handle character class.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)

// ValidHandle reports whether s is an acceptable account handle.
func ValidHandle(s string) bool {
	return handlePattern.MatchString(s)
}

// ContentValidator validates credential and article submissions.
type ContentValidator struct {
}

func NewContentValidator() Validator {
	return &ContentValidator{}
}

func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)

	case models.ArticleRequest:
		return v.validateArticle(ctx, value, fields...)
	case *models.ArticleRequest:
		return v.validateArticle(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateCredentials(_ context.Context, creds models.CredentialsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHandle, FieldSecret}
	}

	for _, field := range fields {
		switch field {
		case FieldHandle:
			if !ValidHandle(creds.Handle) {
				return ErrInvalidHandle
			}
		case FieldSecret:
			if len(creds.Secret) < MinSecretLen {
				return ErrShortSecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateArticle(_ context.Context, req models.ArticleRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDate, FieldBody}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDate:
			if _, err := models.ParseDate(req.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldBody:
			if strings.TrimSpace(req.Body) == "" {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
