package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("content is required")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentTooLong  = errors.New("content is too long")
	ErrCategoryTooLong = errors.New("category is too long")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrUsernameTooLong = errors.New("username is too long")
)
