// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

// Package session holds the client's view of who is logged in. A single
// Store instance is owned by the page controller; all mutations happen on
// the event loop, so the Store carries no locks, only a generation counter
// that lets in-flight request results be recognised as stale.
package session

// Status is the authentication state of the client.
type Status int

const (
	// StatusUnknown is the state before any check has been issued.
	StatusUnknown Status = iota
	// StatusChecking means an auth-check is in flight.
	StatusChecking
	// StatusAuthenticated means the last check resolved with an identity.
	StatusAuthenticated
	// StatusAnonymous means there is no usable session.
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Store tracks the current authentication status and identity.
//
// Invariant: identity is non-empty if and only if the status is
// StatusAuthenticated.
type Store struct {
	status     Status
	identity   string
	generation uint64
}

// NewStore returns a Store in StatusUnknown with no identity.
func NewStore() *Store {
	return &Store{status: StatusUnknown}
}

// Status returns the current status. Pure read.
func (s *Store) Status() Status { return s.status }

// Identity returns the identity bound to the session, or "" unless the
// status is StatusAuthenticated.
func (s *Store) Identity() string { return s.identity }

// Generation returns the current staleness generation. Results of remote
// calls issued under an older generation must be discarded on completion.
func (s *Store) Generation() uint64 { return s.generation }

// BeginCheck transitions into StatusChecking and reports whether the caller
// should issue the remote auth-check. A check already in flight is not
// duplicated: the second caller gets false and issues nothing.
func (s *Store) BeginCheck() bool {
	if s.status == StatusChecking {
		return false
	}
	s.status = StatusChecking
	return true
}

// ResolveCheck applies the outcome of an auth-check. A non-nil err or an
// empty identity resolves to StatusAnonymous; check failures are absorbed
// here, never surfaced as user-visible errors. The generation is bumped so
// that requests issued before the resolution cannot apply afterwards.
func (s *Store) ResolveCheck(identity string, err error) {
	s.generation++
	if err != nil || identity == "" {
		s.status = StatusAnonymous
		s.identity = ""
		return
	}
	s.status = StatusAuthenticated
	s.identity = identity
}

// Logout clears the session locally. It is a local guarantee: the caller
// fires the remote logout call separately, and its outcome does not gate
// this transition. The generation bump invalidates every request still in
// flight under the old session.
func (s *Store) Logout() {
	s.generation++
	s.status = StatusAnonymous
	s.identity = ""
}
