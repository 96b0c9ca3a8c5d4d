package tui

import (
	"github.com/jaekyeom/go-bulletin-board/internal/posts"
	"github.com/jaekyeom/go-bulletin-board/models"
)

type authCheckedMsg struct {
	username string
	err      error
}

type loginDoneMsg struct {
	username string
	err      error
}

type registerDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type postsLoadedMsg struct {
	token posts.FetchToken
	posts []models.Post
	err   error
}

// postCreatedMsg carries only the outcome: a successful create is followed
// by a re-fetch, so the server's list is the sole source of the new record.
type postCreatedMsg struct {
	err error
}

type postDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
