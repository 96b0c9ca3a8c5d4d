package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaekyeom/go-bulletin-board/internal/adapter"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/posts"
	"github.com/jaekyeom/go-bulletin-board/internal/session"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
)

type mode int

const (
	modeBoard mode = iota
	modeLogin
	modeRegister
	modeCompose
)

const statusTTL = 3 * time.Second

// categories offered by the compose form. The empty entry means no category;
// the server accepts and ignores the field either way.
var categories = []string{"", "general", "question", "announcement", "event"}

// appModel is the Bubble Tea model for the whole client: the board page plus
// the login, register and compose forms as modes of a single model. All
// state transitions of the session and post stores happen here, on the event
// loop; the cmd* methods only perform the remote call and report back with a
// typed message.
type appModel struct {
	ctx    context.Context
	api    adapter.ServerAdapter
	sess   *session.Store
	posts  *posts.Store
	creds  store.CredentialRepository
	logger *logger.Logger

	mode mode
	idx  int

	statusMsg string
	errMsg    string
	workflow  deleteWorkflow

	// form state, shared by the login/register/compose modes
	inputs      []textinput.Model
	focus       int
	contentArea textarea.Model
	category    int
	submitting  bool
	formErr     string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(
	ctx context.Context,
	api adapter.ServerAdapter,
	sess *session.Store,
	collection *posts.Store,
	creds store.CredentialRepository,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) appModel {
	return appModel{
		ctx:       ctx,
		api:       api,
		sess:      sess,
		posts:     collection,
		creds:     creds,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Init implements [tea.Model]. The very first thing the client does is find
// out who it is: a single auth-check is issued and everything else waits for
// its resolution.
func (m appModel) Init() tea.Cmd {
	if m.sess.BeginCheck() {
		return m.cmdCheckStatus()
	}
	return nil
}

// Update implements [tea.Model]. Typed messages produced by the cmd* methods
// are handled first, key events after; everything else is forwarded to the
// focused form widget.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authCheckedMsg:
		// Check failures resolve to anonymous and are never shown: a dead
		// server on startup reads as "not logged in", not as an error page.
		m.sess.ResolveCheck(msg.username, msg.err)
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("auth check resolved to anonymous")
		}
		if m.sess.Status() == session.StatusAuthenticated {
			if token, ok := m.posts.BeginFetch(); ok {
				return m, m.cmdFetchPosts(token)
			}
		}
		return m, nil

	case postsLoadedMsg:
		if err := m.posts.CompleteFetch(msg.token, msg.posts, msg.err); err != nil {
			if errors.Is(err, adapter.ErrUnauthorized) {
				// The credential went bad between check and fetch.
				m.sess.ResolveCheck("", err)
				m.posts.Reset()
				m.idx = 0
				return m, nil
			}
			m.errMsg = humanizeServerUnavailableError(err)
			return m, nil
		}
		m.errMsg = ""
		m.clampCursor()
		return m, nil

	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.sess.ResolveCheck(msg.username, nil)
		m.mode = modeBoard
		m.formErr = ""
		m.statusMsg = "logged in as " + msg.username
		if token, ok := m.posts.BeginFetch(); ok {
			return m, tea.Batch(m.cmdFetchPosts(token), clearStatusAfter())
		}
		return m, clearStatusAfter()

	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.startLoginForm()
		m.statusMsg = "account created, log in"
		return m, clearStatusAfter()

	case postCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		// The server may or may not echo the created record; a refetch
		// covers both and keeps the collection in server order.
		m.mode = modeBoard
		m.formErr = ""
		m.statusMsg = "post published"
		if token, ok := m.posts.BeginFetch(); ok {
			return m, tea.Batch(m.cmdFetchPosts(token), clearStatusAfter())
		}
		return m, clearStatusAfter()

	case postDeletedMsg:
		m.workflow.Finish()
		if err := m.posts.CompleteRemove(msg.id, msg.err); err != nil {
			m.errMsg = humanizeServerUnavailableError(err)
			return m, nil
		}
		m.errMsg = ""
		m.clampCursor()
		m.statusMsg = "post deleted"
		return m, clearStatusAfter()

	case logoutDoneMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("remote logout failed")
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard: " + msg.err.Error()
			return m, nil
		}
		m.statusMsg = "copied to clipboard"
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedWidget(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.mode {
	case modeLogin, modeRegister:
		return m.updateAuthForm(keyMsg)
	case modeCompose:
		return m.updateCompose(keyMsg)
	default:
		return m.updateBoard(keyMsg)
	}
}

func (m appModel) updateBoard(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The confirmation dialog captures all input while open. While the
	// delete itself runs there is nothing left to decide, so keys are
	// swallowed until the outcome arrives.
	switch m.workflow.State() {
	case workflowConfirming:
		switch {
		case key.Matches(keyMsg, keys.yes), key.Matches(keyMsg, keys.enter):
			if id, ok := m.workflow.Confirm(); ok {
				return m, m.cmdDeletePost(id)
			}
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.workflow.Cancel()
		}
		return m, nil
	case workflowDeleting:
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}
	if keyMsg.String() == "v" {
		m.showBuildInfo = true
		return m, nil
	}

	if m.sess.Status() != session.StatusAuthenticated {
		// Locked board: only the way in is offered.
		if m.sess.Status() != session.StatusAnonymous {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.login):
			m.startLoginForm()
			return m, textinput.Blink
		case key.Matches(keyMsg, keys.register):
			m.startRegisterForm()
			return m, textinput.Blink
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.posts.Posts())-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.refresh):
		if token, ok := m.posts.BeginFetch(); ok {
			return m, m.cmdFetchPosts(token)
		}

	case key.Matches(keyMsg, keys.newPost):
		m.startComposeForm()
		return m, textarea.Blink

	case key.Matches(keyMsg, keys.delete):
		if post, ok := m.selected(); ok {
			m.workflow.Begin(post.ID, post.Title)
		}

	case key.Matches(keyMsg, keys.copy):
		if post, ok := m.selected(); ok {
			return m, cmdCopy(post.Content)
		}

	case key.Matches(keyMsg, keys.logout):
		cmd := m.logoutLocally()
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateAuthForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeBoard
		m.submitting = false
		m.formErr = ""
		return m, nil
	case "tab":
		m.focusNext()
		return m, nil
	case "shift+tab":
		m.focusPrev()
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}

		username := strings.TrimSpace(m.inputs[0].Value())
		password := m.inputs[1].Value()
		if username == "" || password == "" {
			m.formErr = "username and password are required"
			return m, nil
		}
		if m.mode == modeRegister && m.inputs[2].Value() != password {
			m.formErr = "passwords do not match"
			return m, nil
		}

		m.formErr = ""
		m.submitting = true
		if m.mode == modeLogin {
			return m, m.cmdLogin(username, password)
		}
		return m, m.cmdRegister(username, password)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateCompose(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeBoard
		m.submitting = false
		m.formErr = ""
		return m, nil
	case "tab":
		m.composeFocusMove(1)
		return m, nil
	case "shift+tab":
		m.composeFocusMove(-1)
		return m, nil
	case "ctrl+s":
		if m.submitting {
			return m, nil
		}

		draft := models.PostDraft{
			Title:    strings.TrimSpace(m.inputs[0].Value()),
			Content:  strings.TrimSpace(m.contentArea.Value()),
			Category: categories[m.category],
		}
		if err := m.posts.ValidateDraft(draft); err != nil {
			m.formErr = err.Error()
			return m, nil
		}

		m.formErr = ""
		m.submitting = true
		return m, m.cmdCreatePost(draft)
	}

	// The category row has no widget of its own; left/right cycle the
	// fixed set while it is focused.
	if m.focus == 1 {
		switch keyMsg.String() {
		case "left":
			m.category = (m.category - 1 + len(categories)) % len(categories)
		case "right":
			m.category = (m.category + 1) % len(categories)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 2 {
		m.contentArea, cmd = m.contentArea.Update(keyMsg)
		return m, cmd
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateFocusedWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeLogin, modeRegister:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case modeCompose:
		switch m.focus {
		case 0:
			m.inputs[0], cmd = m.inputs[0].Update(msg)
		case 2:
			m.contentArea, cmd = m.contentArea.Update(msg)
		}
	}
	return m, cmd
}

// View implements [tea.Model].
func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.mode {
	case modeLogin:
		return m.viewAuthForm("LOG IN", "[Log in]")
	case modeRegister:
		return m.viewAuthForm("REGISTER", "[Register]")
	case modeCompose:
		return m.viewCompose()
	default:
		return m.viewBoard()
	}
}

// logoutLocally clears the session before anything touches the network. The
// remote logout is fired afterwards and its outcome changes nothing locally.
// The adapter keeps its credential until that request has been issued, so
// the server can tie the logout to the session being ended.
func (m *appModel) logoutLocally() tea.Cmd {
	m.sess.Logout()
	m.posts.Reset()
	m.idx = 0
	m.errMsg = ""
	m.statusMsg = "logged out"
	return tea.Batch(m.cmdLogoutRemote(), clearStatusAfter())
}

func (m appModel) selected() (models.Post, bool) {
	list := m.posts.Posts()
	if len(list) == 0 || m.idx < 0 || m.idx >= len(list) {
		return models.Post{}, false
	}
	return list[m.idx], true
}

func (m *appModel) clampCursor() {
	if last := len(m.posts.Posts()) - 1; m.idx > last {
		m.idx = last
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *appModel) startLoginForm() {
	m.startAuthForm(modeLogin)
}

func (m *appModel) startRegisterForm() {
	m.startAuthForm(modeRegister)
}

func (m *appModel) startAuthForm(target mode) {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.inputs = []textinput.Model{username, password}

	if target == modeRegister {
		repeat := textinput.New()
		repeat.Placeholder = "repeat password"
		repeat.CharLimit = 256
		repeat.Width = 40
		repeat.EchoMode = textinput.EchoPassword
		repeat.EchoCharacter = '*'
		m.inputs = append(m.inputs, repeat)
	}

	m.focus = 0
	m.submitting = false
	m.formErr = ""
	m.mode = target
}

func (m *appModel) startComposeForm() {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 48
	title.Focus()

	area := textarea.New()
	area.Placeholder = "content"
	area.SetWidth(60)
	area.SetHeight(8)
	area.CharLimit = 4000

	m.inputs = []textinput.Model{title}
	m.contentArea = area
	m.category = 0
	m.focus = 0
	m.submitting = false
	m.formErr = ""
	m.mode = modeCompose
}

func (m *appModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *appModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// composeFocusMove cycles focus over title, category and the content area.
func (m *appModel) composeFocusMove(step int) {
	switch m.focus {
	case 0:
		m.inputs[0].Blur()
	case 2:
		m.contentArea.Blur()
	}

	m.focus = (m.focus + step + 3) % 3

	switch m.focus {
	case 0:
		m.inputs[0].Focus()
	case 2:
		m.contentArea.Focus()
	}
}

func (m appModel) cmdCheckStatus() tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		me, err := api.Me(ctx)
		return authCheckedMsg{username: me.Username, err: err}
	}
}

func (m appModel) cmdFetchPosts(token posts.FetchToken) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		list, err := api.ListPosts(ctx)
		return postsLoadedMsg{token: token, posts: list, err: err}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	api := m.api
	creds := m.creds
	log := m.logger

	return func() tea.Msg {
		resp, err := api.Login(ctx, models.User{Username: username, Password: password})
		if err != nil {
			return loginDoneMsg{err: err}
		}

		// Cookie deployments carry no token in the body; there is nothing
		// to persist and the jar holds the session for this process.
		if resp.AccessToken != "" {
			if saveErr := creds.Save(ctx, models.Credentials{Token: resp.AccessToken, Username: username}); saveErr != nil {
				log.Warn().Err(saveErr).Msg("persist credentials")
			}
		}

		return loginDoneMsg{username: username}
	}
}

func (m appModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		err := api.Register(ctx, models.User{Username: username, Password: password})
		return registerDoneMsg{err: err}
	}
}

func (m appModel) cmdLogoutRemote() tea.Cmd {
	ctx := m.ctx
	api := m.api
	creds := m.creds
	log := m.logger

	return func() tea.Msg {
		if clearErr := creds.Clear(ctx); clearErr != nil {
			log.Warn().Err(clearErr).Msg("clear persisted credentials")
		}
		err := api.Logout(ctx)
		api.SetToken("")
		return logoutDoneMsg{err: err}
	}
}

func (m appModel) cmdCreatePost(draft models.PostDraft) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		_, err := api.CreatePost(ctx, draft)
		return postCreatedMsg{err: err}
	}
}

func (m appModel) cmdDeletePost(id int64) tea.Cmd {
	ctx := m.ctx
	api := m.api

	return func() tea.Msg {
		err := api.DeletePost(ctx, id)
		return postDeletedMsg{id: id, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
