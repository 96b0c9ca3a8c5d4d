// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

package tui

// workflowState is the phase of the delete confirmation dialog.
type workflowState int

const (
	workflowIdle workflowState = iota
	workflowConfirming
	workflowDeleting
)

// deleteWorkflow drives the delete confirmation dialog for exactly one post
// at a time. Begin opens the dialog, Confirm hands out the target id exactly
// once and moves to the deleting phase, Cancel backs out. Once the remote
// call is in flight the dialog can no longer be cancelled; Finish closes it
// when the outcome arrives, whatever it was.
type deleteWorkflow struct {
	state  workflowState
	postID int64
	title  string
}

func (w *deleteWorkflow) State() workflowState { return w.state }

// Begin opens the dialog for the given post. Returns false if a dialog is
// already open or a delete is already running.
func (w *deleteWorkflow) Begin(postID int64, title string) bool {
	if w.state != workflowIdle {
		return false
	}
	w.state = workflowConfirming
	w.postID = postID
	w.title = title
	return true
}

// Confirm yields the id to delete. Only the first call after Begin succeeds;
// a repeated confirm while the delete runs returns false, so one dialog can
// never issue two remote deletes.
func (w *deleteWorkflow) Confirm() (int64, bool) {
	if w.state != workflowConfirming {
		return 0, false
	}
	w.state = workflowDeleting
	return w.postID, true
}

// Cancel closes the dialog without deleting. Illegal while the remote call
// is in flight: the outcome is already on its way and must be applied.
func (w *deleteWorkflow) Cancel() bool {
	if w.state != workflowConfirming {
		return false
	}
	w.reset()
	return true
}

// Finish closes the dialog after the remote outcome has been applied.
func (w *deleteWorkflow) Finish() {
	w.reset()
}

func (w *deleteWorkflow) reset() {
	w.state = workflowIdle
	w.postID = 0
	w.title = ""
}

func (w *deleteWorkflow) viewOverlay() string {
	switch w.state {
	case workflowConfirming:
		content := "Delete \"" + fitText(w.title, 40) + "\"?\n\n"
		content += "y: yes    n: no"
		return overlayBoxStyle.Render(content)
	case workflowDeleting:
		return overlayBoxStyle.Render("Deleting \"" + fitText(w.title, 40) + "\"...")
	default:
		return ""
	}
}
