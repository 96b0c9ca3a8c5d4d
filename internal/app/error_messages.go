// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jaekyeom Lee

// Package app contains shared application-layer constants used across the
// bulletin board server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP error bodies to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the API; clients may show
// them verbatim.
package app

const (
	// MsgInvalidRequest is returned when the request body cannot be decoded
	// or a path parameter is malformed.
	MsgInvalidRequest = "invalid request"

	// MsgCredentialsRequired is returned when a register or login request
	// omits the username or the password.
	MsgCredentialsRequired = "username and password are required"

	// MsgUsernameAlreadyTaken is returned when a registration attempt is
	// rejected because the requested username is already in use.
	MsgUsernameAlreadyTaken = "username already taken"

	// MsgInvalidCredentials is returned on failed logins and on requests
	// whose session credential is missing, expired or unverifiable. Login
	// failures deliberately do not distinguish a wrong password from an
	// unknown username.
	MsgInvalidCredentials = "invalid credentials"

	// MsgTitleContentRequired is returned when a post draft is missing its
	// title or content, or exceeds the API size caps.
	MsgTitleContentRequired = "title and content are required"

	// MsgPostNotFound is returned when a delete targets a post id that does
	// not exist.
	MsgPostNotFound = "post not found"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// delete a post that belongs to a different user.
	MsgAccessDenied = "access denied"

	// MsgUnexpectedError is returned for any failure the client cannot
	// resolve; details stay in the server log.
	MsgUnexpectedError = "unexpected error"
)
