// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, and UUID generation for request tracing.
package utils

import (
	"context"

	"github.com/jaekyeom/go-bulletin-board/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key used to store the parsed session token in the
// request context once the auth middleware has validated the credential.
var TokenCtxKey = contextKey("sessionToken")

// GetTokenFromContext retrieves the parsed session token from the context.
// ok is false when no validated token is present.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
