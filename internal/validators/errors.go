package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidHandle = errors.New("handle must be 3-32 characters of letters, digits or underscore")
	ErrShortSecret   = errors.New("secret must be at least 8 characters")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrEmptyBody     = errors.New("body must not be empty")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD form")
)
