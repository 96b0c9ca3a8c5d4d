// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaekyeom/go-bulletin-board/internal/adapter"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/mock"
	"github.com/jaekyeom/go-bulletin-board/internal/posts"
	"github.com/jaekyeom/go-bulletin-board/internal/session"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T, api *mock.MockServerAdapter, creds *mock.MockCredentialRepository) appModel {
	t.Helper()
	sess := session.NewStore()
	return newAppModel(context.Background(), api, sess, posts.NewStore(sess), creds, models.AppBuildInfo{}, logger.Nop())
}

func drive(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	am, ok := updated.(appModel)
	require.True(t, ok, "Update must return an appModel")
	return am, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// authenticate drives the model through the startup check and the initial
// fetch so tests can start from a populated board.
func authenticate(t *testing.T, m appModel, api *mock.MockServerAdapter, list []models.Post) appModel {
	t.Helper()

	api.EXPECT().Me(gomock.Any()).Return(models.MeResponse{Username: "alice"}, nil)
	api.EXPECT().ListPosts(gomock.Any()).Return(list, nil)

	checkCmd := m.Init()
	require.NotNil(t, checkCmd)

	m, fetchCmd := drive(t, m, checkCmd())
	require.NotNil(t, fetchCmd, "an authenticated check must trigger a fetch")

	m, _ = drive(t, m, fetchCmd())
	return m
}

func somePosts(ids ...int64) []models.Post {
	list := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		list = append(list, models.Post{
			ID:       id,
			Title:    "post " + string(rune('a'+id)),
			Content:  "content",
			CreateAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		})
	}
	return list
}

func TestStartup_FailedCheckLocksBoardWithoutFetching(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	api.EXPECT().Me(gomock.Any()).Return(models.MeResponse{}, adapter.ErrUnauthorized)
	// No ListPosts expectation: an anonymous resolution must not fetch.

	m := newTestModel(t, api, creds)
	checkCmd := m.Init()
	require.NotNil(t, checkCmd)

	m, cmd := drive(t, m, checkCmd())

	assert.Nil(t, cmd)
	assert.Equal(t, session.StatusAnonymous, m.sess.Status())
	assert.Empty(t, m.posts.Posts())
	assert.Contains(t, m.View(), "locked")
	assert.NotContains(t, m.View(), "Error", "check failures must not surface as errors")
}

func TestStartup_AuthenticatedCheckFetchesAndRendersPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	list := []models.Post{{ID: 1, Title: "hello board", Content: "first", CreateAt: time.Now()}}
	m := authenticate(t, newTestModel(t, api, creds), api, list)

	assert.Equal(t, session.StatusAuthenticated, m.sess.Status())
	assert.Equal(t, "alice", m.sess.Identity())
	assert.Contains(t, m.View(), "hello board")
	assert.Contains(t, m.View(), "Logged in as alice")
}

func TestRefresh_SecondRequestCoalesces(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	api.EXPECT().ListPosts(gomock.Any()).Return(somePosts(1, 2), nil).Times(1)

	m, firstCmd := drive(t, m, keyRune('r'))
	require.NotNil(t, firstCmd)

	m, secondCmd := drive(t, m, keyRune('r'))
	assert.Nil(t, secondCmd, "a refresh while one is in flight must coalesce")

	m, _ = drive(t, m, firstCmd())
	assert.Len(t, m.posts.Posts(), 2)
}

func TestFetch_UnauthorizedResolvesToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	api.EXPECT().ListPosts(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	m, fetchCmd := drive(t, m, keyRune('r'))
	require.NotNil(t, fetchCmd)

	m, _ = drive(t, m, fetchCmd())

	assert.Equal(t, session.StatusAnonymous, m.sess.Status())
	assert.Empty(t, m.posts.Posts())
	assert.Contains(t, m.View(), "locked")
}

func TestFetch_FailureKeepsCollectionAndShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	api.EXPECT().ListPosts(gomock.Any()).Return(nil, adapter.ErrServer)

	m, fetchCmd := drive(t, m, keyRune('r'))
	m, _ = drive(t, m, fetchCmd())

	assert.Len(t, m.posts.Posts(), 1)
	assert.Contains(t, m.View(), "Error")
}

func TestDelete_ServerFailureKeepsPostAndClosesDialog(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	api.EXPECT().DeletePost(gomock.Any(), int64(1)).Return(adapter.ErrServer)

	m, _ = drive(t, m, keyRune('d'))
	require.Equal(t, workflowConfirming, m.workflow.State())

	m, deleteCmd := drive(t, m, keyRune('y'))
	require.NotNil(t, deleteCmd)

	m, _ = drive(t, m, deleteCmd())

	assert.True(t, m.posts.Contains(1), "the post must survive a failed delete")
	assert.Equal(t, workflowIdle, m.workflow.State())
	assert.Contains(t, m.View(), "Error")
}

func TestDelete_DoubleConfirmIssuesOneDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	api.EXPECT().DeletePost(gomock.Any(), int64(1)).Return(nil).Times(1)

	m, _ = drive(t, m, keyRune('d'))
	m, deleteCmd := drive(t, m, keyRune('y'))
	require.NotNil(t, deleteCmd)

	// Mashing y while the delete runs must not produce a second call.
	m, repeatCmd := drive(t, m, keyRune('y'))
	assert.Nil(t, repeatCmd)

	m, _ = drive(t, m, deleteCmd())
	assert.False(t, m.posts.Contains(1))
}

func TestDelete_SuccessRemovesPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1, 2))

	api.EXPECT().DeletePost(gomock.Any(), int64(1)).Return(nil)

	m, _ = drive(t, m, keyRune('d'))
	m, deleteCmd := drive(t, m, keyRune('y'))
	m, _ = drive(t, m, deleteCmd())

	assert.False(t, m.posts.Contains(1))
	assert.True(t, m.posts.Contains(2))
}

func TestDelete_CancelLeavesCollectionAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	m, _ = drive(t, m, keyRune('d'))
	m, cmd := drive(t, m, keyRune('n'))

	assert.Nil(t, cmd)
	assert.Equal(t, workflowIdle, m.workflow.State())
	assert.True(t, m.posts.Contains(1))
}

func TestLogout_ClearsSessionBeforeRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	// Only the synchronous part runs here: the local session is gone no
	// matter what the remote logout later returns.
	m, cmd := drive(t, m, keyRune('l'))

	require.NotNil(t, cmd)
	assert.Equal(t, session.StatusAnonymous, m.sess.Status())
	assert.Empty(t, m.posts.Posts())
	assert.Contains(t, m.View(), "locked")
}

func TestLogout_StalePendingFetchIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, nil)

	api.EXPECT().ListPosts(gomock.Any()).Return(somePosts(1, 2), nil)

	m, fetchCmd := drive(t, m, keyRune('r'))
	require.NotNil(t, fetchCmd)

	// Logout lands before the fetch completes.
	m, _ = drive(t, m, keyRune('l'))
	m, _ = drive(t, m, fetchCmd())

	assert.Empty(t, m.posts.Posts(), "a fetch issued before logout must not repopulate the board")
}

func TestLogoutCommand_ClearsAdapterTokenAfterRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	// The remote logout is authenticated, so the adapter credential must
	// survive until the request has been issued.
	creds.EXPECT().Clear(gomock.Any()).Return(nil)
	gomock.InOrder(
		api.EXPECT().Logout(gomock.Any()).Return(nil),
		api.EXPECT().SetToken(""),
	)

	m := newTestModel(t, api, creds)
	msg := m.cmdLogoutRemote()()

	assert.Equal(t, logoutDoneMsg{}, msg)
}

func TestLoginCommand_PersistsBearerCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	api.EXPECT().Login(gomock.Any(), models.User{Username: "alice", Password: "pw"}).
		Return(models.LoginResponse{AccessToken: "tok-1"}, nil)
	creds.EXPECT().Save(gomock.Any(), models.Credentials{Token: "tok-1", Username: "alice"}).Return(nil)

	m := newTestModel(t, api, creds)
	msg := m.cmdLogin("alice", "pw")()

	assert.Equal(t, loginDoneMsg{username: "alice"}, msg)
}

func TestLoginCommand_CookieModeSkipsPersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{}, nil)
	// No Save expectation: an empty body means the cookie jar holds the session.

	m := newTestModel(t, api, creds)
	msg := m.cmdLogin("alice", "pw")()

	assert.Equal(t, loginDoneMsg{username: "alice"}, msg)
}

func TestLoginDone_AuthenticatesAndFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := newTestModel(t, api, creds)
	m.sess.ResolveCheck("", adapter.ErrUnauthorized)
	(&m).startLoginForm()

	m, cmd := drive(t, m, loginDoneMsg{username: "alice"})

	require.NotNil(t, cmd)
	assert.Equal(t, session.StatusAuthenticated, m.sess.Status())
	assert.Equal(t, modeBoard, m.mode)
}

func TestLoginDone_FailureStaysOnFormWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := newTestModel(t, api, creds)
	m.sess.ResolveCheck("", adapter.ErrUnauthorized)
	(&m).startLoginForm()

	m, _ = drive(t, m, loginDoneMsg{err: adapter.ErrUnauthorized})

	assert.Equal(t, modeLogin, m.mode)
	assert.Equal(t, session.StatusAnonymous, m.sess.Status())
	assert.Contains(t, m.View(), "invalid credentials")
}

func TestCompose_EmptyTitleRejectedWithoutRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, nil)
	// No CreatePost expectation.

	m, _ = drive(t, m, keyRune('n'))
	require.Equal(t, modeCompose, m.mode)
	m.contentArea.SetValue("body without a title")

	m, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, modeCompose, m.mode)
	assert.Contains(t, m.View(), "Error")
}

func TestCompose_PublishRefetchesWithoutDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	m := authenticate(t, newTestModel(t, api, creds), api, somePosts(1))

	// The refetch is the list with the new post; applying it wholesale
	// leaves exactly one copy of every id.
	refreshed := append(somePosts(2), somePosts(1)...)
	api.EXPECT().CreatePost(gomock.Any(), models.PostDraft{Title: "T", Content: "C"}).Return(nil, nil)
	api.EXPECT().ListPosts(gomock.Any()).Return(refreshed, nil)

	m, _ = drive(t, m, keyRune('n'))
	m.inputs[0].SetValue("T")
	m.contentArea.SetValue("C")

	m, createCmd := drive(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, createCmd)

	m, batchCmd := drive(t, m, createCmd())
	require.NotNil(t, batchCmd, "a 201 with an empty body must trigger a refetch")
	assert.Equal(t, modeBoard, m.mode)

	m, _ = drive(t, m, awaitMsg[postsLoadedMsg](t, batchCmd))

	seen := map[int64]int{}
	for _, p := range m.posts.Posts() {
		seen[p.ID]++
	}
	assert.Equal(t, map[int64]int{1: 1, 2: 1}, seen)
}

// awaitMsg runs a command, fanning a batch out into goroutines, and returns
// the first message of type T. The status-clear tick in the same batch is
// left to expire on its own.
func awaitMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()

	first := cmd()
	batch, ok := first.(tea.BatchMsg)
	if !ok {
		typed, ok := first.(T)
		if !ok {
			t.Fatalf("message has type %T, not the expected one", first)
		}
		return typed
	}

	msgCh := make(chan tea.Msg, len(batch))
	for _, c := range batch {
		go func(c tea.Cmd) { msgCh <- c() }(c)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgCh:
			if typed, ok := msg.(T); ok {
				return typed
			}
		case <-deadline:
			t.Fatal("no message of the expected type arrived")
		}
	}
}

func TestRegister_PasswordMismatchRejectedWithoutRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)
	// No Register expectation.

	m := newTestModel(t, api, creds)
	m.sess.ResolveCheck("", adapter.ErrUnauthorized)
	(&m).startRegisterForm()

	m.inputs[0].SetValue("alice")
	m.inputs[1].SetValue("pw-one")
	m.inputs[2].SetValue("pw-two")

	m, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, modeRegister, m.mode)
	assert.Contains(t, m.View(), "passwords do not match")
}

func TestBoard_PlaceholderWhileChecking(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	creds := mock.NewMockCredentialRepository(ctrl)

	api.EXPECT().Me(gomock.Any()).Return(models.MeResponse{}, adapter.ErrNetwork).AnyTimes()

	m := newTestModel(t, api, creds)
	_ = m.Init()

	view := m.View()
	assert.Contains(t, view, "Checking session")
	assert.False(t, strings.Contains(view, "locked"))
}
