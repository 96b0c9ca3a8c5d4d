package adapter

import (
	"context"

	"github.com/jaekyeom/go-bulletin-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client's single gateway to the bulletin board API.
// All methods attach the current credential (bearer token or ambient session
// cookie, depending on the configured transport), serialize bodies as JSON,
// and classify non-2xx responses into the sentinel errors of this package.
// None of the methods retry; a failed call surfaces to the caller as-is.
type ServerAdapter interface {
	// Register creates a new account. A duplicate username surfaces as
	// [ErrConflict] carrying the server's message verbatim.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and establishes the session credential: in bearer
	// mode the returned access token is stored on the adapter, in cookie
	// mode the session cookie lands in the client's jar.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Logout invalidates the remote session. The local credential is
	// cleared by the caller regardless of this call's outcome.
	Logout(ctx context.Context) error

	// Me reports the identity bound to the current credential.
	Me(ctx context.Context) (models.MeResponse, error)

	// ListPosts returns all posts in server order (newest first).
	ListPosts(ctx context.Context) ([]models.Post, error)

	// CreatePost submits a draft. The returned post is non-nil only when
	// the server echoes the created record; a 201 with an empty body
	// returns (nil, nil).
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)

	// DeletePost removes the post with the given id.
	DeletePost(ctx context.Context, id int64) error

	// SetToken stores the bearer token used on authenticated requests.
	// A no-op in cookie transport mode.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string
}
