package store

import (
	"context"

	"github.com/jaekyeom/go-bulletin-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts on the server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PostRepository persists board posts on the server.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, authorID int64, draft models.PostDraft) (models.Post, error)
	GetPostAuthor(ctx context.Context, postID int64) (int64, error)
	DeletePost(ctx context.Context, postID int64) error
}
