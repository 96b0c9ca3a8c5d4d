package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jaekyeom/go-bulletin-board/internal/app"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/service"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/internal/utils"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// sessionCookieName is the cookie carrying the session token in cookie
// transport deployments.
const sessionCookieName = "session"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, http.StatusBadRequest, app.MsgCredentialsRequired)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			writeMessage(w, http.StatusConflict, app.MsgUsernameAlreadyTaken)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

// login authenticates the user and establishes the session both ways: the
// access token is returned in the body for bearer clients and set as an
// HttpOnly cookie for cookie clients. A deployment's clients use one of the
// two, never both.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, http.StatusBadRequest, app.MsgCredentialsRequired)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_, _ = utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString}, http.StatusOK)
}

// logout expires the session cookie. Bearer tokens are stateless, so there
// is nothing to revoke server-side; the client clears its own credential.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// me reports the identity bound to the validated credential.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok || token.Username == "" {
		log.Error().Msg("no token in context after auth middleware")
		writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{Username: token.Username}, http.StatusOK)
}
