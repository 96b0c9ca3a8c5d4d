// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

// Package posts holds the client's copy of the remote post collection. Like
// the session store it is owned by a single page controller and mutated only
// on the event loop; the fetch guard and generation check below are the only
// concurrency machinery it needs.
package posts

import (
	"strings"

	"github.com/jaekyeom/go-bulletin-board/internal/session"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// FetchToken identifies one issued list-fetch. The completion handler hands
// it back so the store can tell whether the response is still authoritative.
type FetchToken struct {
	generation uint64
}

// Store holds the ordered list of posts currently known to the client.
// Order is the server's order; the store never re-sorts. The loading flag
// here is distinct from the session's checking state.
type Store struct {
	session *session.Store

	posts    []models.Post
	loading  bool
	inFlight bool
	// pending is the token of the outstanding fetch, valid while inFlight.
	pending FetchToken
}

// NewStore returns an empty Store gated on sess.
func NewStore(sess *session.Store) *Store {
	return &Store{session: sess}
}

// Posts returns the current collection. Callers must not mutate it.
func (s *Store) Posts() []models.Post { return s.posts }

// Loading reports whether a list-fetch is outstanding.
func (s *Store) Loading() bool { return s.loading }

// Contains reports whether a post with the given id is in the collection.
func (s *Store) Contains(id int64) bool {
	for _, p := range s.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// BeginFetch decides whether a list-fetch should be issued. It returns
// (token, true) when the caller should perform the remote call and hand the
// token to CompleteFetch afterwards.
//
// Two cases issue nothing: the session is not authenticated (the collection
// stays empty and the loading flag is cleared), or a fetch is already in
// flight (the new request coalesces into the outstanding one, so two
// completions can never interleave).
func (s *Store) BeginFetch() (FetchToken, bool) {
	if s.session.Status() != session.StatusAuthenticated {
		s.loading = false
		return FetchToken{}, false
	}
	if s.inFlight {
		return FetchToken{}, false
	}

	s.inFlight = true
	s.loading = true
	s.pending = FetchToken{generation: s.session.Generation()}
	return s.pending, true
}

// CompleteFetch applies the outcome of the fetch identified by token. A
// response issued under an older session generation is dropped silently:
// the list a logged-out user requested must not appear after logout. On
// success the collection is replaced wholesale; on failure it is left
// untouched and err is returned for display.
//
// Only the completion matching the outstanding token releases the fetch
// guard. A stale completion (issued before a logout that already reset the
// store) must not clear flags now owned by a newer outstanding fetch.
func (s *Store) CompleteFetch(token FetchToken, fetched []models.Post, err error) error {
	if s.inFlight && token == s.pending {
		s.inFlight = false
		s.loading = false
	}

	if token.generation != s.session.Generation() {
		return nil
	}
	if err != nil {
		return err
	}

	s.posts = fetched
	return nil
}

// ValidateDraft enforces the create preconditions: non-empty title and
// non-empty content. The remote call must not be attempted when this
// returns an error.
func (s *Store) ValidateDraft(draft models.PostDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(draft.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// CompleteRemove applies the outcome of a remote delete. The post leaves
// the collection only after the server confirmed the delete; on failure the
// collection is unchanged and err is returned for display.
func (s *Store) CompleteRemove(id int64, err error) error {
	if err != nil {
		return err
	}

	kept := s.posts[:0]
	for _, p := range s.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.posts = kept
	return nil
}

// Reset drops the collection and all in-progress flags. Called on logout.
func (s *Store) Reset() {
	s.posts = nil
	s.loading = false
	s.inFlight = false
	s.pending = FetchToken{}
}
