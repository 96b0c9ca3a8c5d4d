package models

import "time"

// User is a bulletin board account. Password is only ever populated on the
// way to the server (register/login requests); the server never echoes it
// back and the client must not persist it.
type User struct {
	UserID    int64     `json:"-" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"password,omitempty" db:"-"`
	// PasswordHash is the server-side bcrypt hash. Never serialized.
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}
