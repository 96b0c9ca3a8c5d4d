package store

import "errors"

// Sentinel errors returned by repository methods. Callers match with
// [errors.Is].
var (
	// ErrUsernameAlreadyExists is returned when registration collides with
	// an existing account.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username matches no
	// account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a post id matches no row.
	ErrPostNotFound = errors.New("post not found")

	// ErrLocalSessionNotFound is returned by the client credential store
	// when no persisted session exists.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
