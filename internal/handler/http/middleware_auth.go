package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/jaekyeom/go-bulletin-board/internal/app"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The credential is taken from the "Authorization: Bearer" header when
// present, else from the session cookie; the two transports are alternatives
// and a request needs exactly one. The token is validated via
// [service.AuthService.ParseToken] and — on success — the parsed token is
// stored in the request context under [utils.TokenCtxKey] before delegating
// to the next handler.
//
// Requests are rejected with 401 and a {"message"} body when no credential
// is present or the token is expired, malformed, or wrongly signed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getSessionCredential(r)
		if err != nil {
			log.Err(err).Send()
			writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
			return
		}

		// Store the validated token in the context so that downstream
		// handlers can retrieve the user without re-parsing it.
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionCredential extracts the raw token from the request: the bearer
// header wins when both transports are present.
func getSessionCredential(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoCredential
	}

	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — fewer than two space-separated parts.
//   - [ErrEmptyToken] — the second part exists but is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
