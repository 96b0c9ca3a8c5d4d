package models

import "time"

// Token is a signed JWT issued by the server together with the user it
// identifies.
type Token struct {
	SignedString string
	UserID       int64
	Username     string
	ExpiresAt    time.Time
}

// Credentials is the client-side persisted session state (bearer-token
// deployments only): the raw token plus the display identity. The two are
// written and cleared together, never independently.
type Credentials struct {
	Token    string
	Username string
}
