package posts

import "errors"

var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
)
