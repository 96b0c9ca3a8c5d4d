package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jaekyeom/go-bulletin-board/internal/app"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/service"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/internal/utils"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// listPosts returns every post, newest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during post listing")
		writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
		return
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

// createPost stores a new post for the authenticated user. The response is
// 201 with an empty body; clients re-fetch the list for the authoritative
// record.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no token in context after auth middleware")
		writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}

	var draft models.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidRequest)
		return
	}

	_, err := h.services.PostService.CreatePost(ctx, token.UserID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid post draft provided")
			writeMessage(w, http.StatusBadRequest, app.MsgTitleContentRequired)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post creation")
			writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
			return
		}
	}

	w.WriteHeader(http.StatusCreated)
}

// deletePost removes a post owned by the authenticated user.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no token in context after auth middleware")
		writeMessage(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeMessage(w, http.StatusBadRequest, app.MsgInvalidRequest)
		return
	}

	if err = h.services.PostService.DeletePost(ctx, token.UserID, postID); err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("post_id", postID).Msg("post not found")
			writeMessage(w, http.StatusNotFound, app.MsgPostNotFound)
			return
		case errors.Is(err, service.ErrNotPostAuthor):
			log.Err(err).Int64("post_id", postID).Msg("delete denied")
			writeMessage(w, http.StatusForbidden, app.MsgAccessDenied)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post deletion")
			writeMessage(w, http.StatusInternalServerError, app.MsgUnexpectedError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
