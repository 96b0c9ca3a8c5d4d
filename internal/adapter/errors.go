package adapter

import "errors"

// Sentinel errors produced by response classification. Callers match with
// [errors.Is]; the wrapped text carries the server's message when one was
// present in the error body.
var (
	ErrBadRequest   = errors.New("invalid request")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("unexpected error")

	// ErrNetwork covers transport failures where no response was received.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse covers 2xx responses whose body cannot be
	// decoded into the expected shape, or is missing required fields.
	ErrMalformedResponse = errors.New("malformed server response")
)
