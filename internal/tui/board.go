// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

package tui

import (
	"fmt"
	"strings"

	"github.com/jaekyeom/go-bulletin-board/internal/session"
)

// viewBoard renders the board page from the current session status, the post
// collection and the workflow state, nothing else. Unknown and checking
// render placeholders, anonymous renders the locked board, authenticated
// renders the list.
func (m appModel) viewBoard() string {
	switch m.sess.Status() {
	case session.StatusUnknown, session.StatusChecking:
		return renderPage("BULLETIN BOARD", "Checking session...", "")
	case session.StatusAnonymous:
		return m.viewLockedBoard()
	}

	var b strings.Builder
	b.WriteString("Logged in as ")
	b.WriteString(m.sess.Identity())
	b.WriteString("\n\n")

	list := m.posts.Posts()
	switch {
	case m.posts.Loading() && len(list) == 0:
		for i := 0; i < 3; i++ {
			b.WriteString("░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░\n")
		}
	case len(list) == 0:
		b.WriteString("No posts yet. Press n to write the first one.\n")
	default:
		for i, post := range list {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-42s %s\n",
				cursor,
				fitText(post.Title, 42),
				post.CreateAt.Format("2006-01-02 15:04"),
			))
			if i == m.idx {
				b.WriteString("    ")
				b.WriteString(helpStyle.Render(fitText(firstLine(post.Content), 60)))
				b.WriteString("\n")
			}
		}
		if m.posts.Loading() {
			b.WriteString("\nRefreshing...\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMsg)
		b.WriteString("\n")
	}
	if overlay := m.workflow.viewOverlay(); overlay != "" {
		b.WriteString("\n")
		b.WriteString(overlay)
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: select │ n: new │ c: copy │ d: delete │ r: refresh │ l: log out"
	return renderPage("BULLETIN BOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m appModel) viewLockedBoard() string {
	var b strings.Builder
	b.WriteString(overlayBoxStyle.Render(lockedStyle.Render("The board is locked.") + "\n\nLog in to read and write posts."))
	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.statusMsg)
	}
	return renderPage("BULLETIN BOARD", b.String(), "l: log in │ r: register")
}

func (m appModel) viewAuthForm(title, submitLabel string) string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	if len(m.inputs) > 2 {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[2].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n" + submitLabel + "...\n")
	} else {
		b.WriteString("\n" + submitLabel + "\n")
	}

	if m.formErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.formErr)
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMsg)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m appModel) viewCompose() string {
	var b strings.Builder
	b.WriteString("Title    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")

	category := categories[m.category]
	if category == "" {
		category = "(none)"
	}
	if m.focus == 1 {
		b.WriteString("Category │ ◀ " + category + " ▶\n\n")
	} else {
		b.WriteString("Category │   " + category + "\n\n")
	}

	b.WriteString("[ CONTENT ]\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n")

	if m.formErr != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.formErr)
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString("\nPublishing...\n")
	}

	return renderPage("NEW POST", strings.TrimRight(b.String(), "\n"), "tab: next field │ ←/→: category │ ctrl+s: publish │ esc: cancel")
}
