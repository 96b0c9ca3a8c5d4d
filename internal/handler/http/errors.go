// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

package http

import "errors"

// Sentinel errors used by the authentication middleware when extracting the
// session credential. Callers can match against them with [errors.Is].
var (
	// ErrNoCredential is returned when the request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoCredential = errors.New("no session credential")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two
	// space-separated parts.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains
	// the expected scheme prefix but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
