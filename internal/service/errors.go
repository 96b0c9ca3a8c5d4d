package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotPostAuthor is returned when a delete targets a post owned by a
	// different user.
	ErrNotPostAuthor = errors.New("post belongs to another user")
)
