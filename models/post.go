package models

import "time"

// Post is a single bulletin board entry as served by GET /api/posts.
// The wire name of the timestamp field is "createAt" (not "createdAt");
// the server has always spelled it that way and the client follows suit.
type Post struct {
	ID      int64  `json:"id" db:"post_id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	// AuthorID is server-side only; the list endpoint does not expose it.
	AuthorID int64     `json:"-" db:"author_id"`
	CreateAt time.Time `json:"createAt" db:"created_at"`
}

// PostDraft is the body of POST /api/posts. Category is optional and the
// server currently ignores it; it is kept on the wire for compatibility
// with older clients that always sent one.
type PostDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}
