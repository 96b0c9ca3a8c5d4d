package service

import (
	"context"
	"testing"
	"time"

	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/mock"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostSvc(t *testing.T, ctrl *gomock.Controller) (PostService, *mock.MockPostRepository) {
	t.Helper()
	repo := mock.NewMockPostRepository(ctrl)
	return NewPostService(repo, logger.Nop()), repo
}

func TestListPosts_PassesThroughServerOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	stored := []models.Post{
		{ID: 2, Title: "newer", CreateAt: time.Now()},
		{ID: 1, Title: "older", CreateAt: time.Now().Add(-time.Hour)},
	}
	repo.EXPECT().ListPosts(ctx).Return(stored, nil)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, posts)
}

func TestCreatePost_RejectsEmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, 1, models.PostDraft{Content: "Body"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreatePost(ctx, 1, models.PostDraft{Title: "New", Content: "  "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreatePost_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	draft := models.PostDraft{Title: "New", Content: "Body", Category: "general"}
	repo.EXPECT().
		CreatePost(ctx, int64(5), draft).
		Return(models.Post{ID: 10, Title: "New", Content: "Body", AuthorID: 5}, nil)

	created, err := svc.CreatePost(ctx, 5, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestDeletePost_OwnPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetPostAuthor(ctx, int64(10)).Return(int64(5), nil)
	repo.EXPECT().DeletePost(ctx, int64(10)).Return(nil)

	require.NoError(t, svc.DeletePost(ctx, 5, 10))
}

func TestDeletePost_ForeignPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetPostAuthor(ctx, int64(10)).Return(int64(99), nil)

	err := svc.DeletePost(ctx, 5, 10)
	assert.ErrorIs(t, err, ErrNotPostAuthor)
}

func TestDeletePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestPostSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetPostAuthor(ctx, int64(10)).Return(int64(0), store.ErrPostNotFound)

	err := svc.DeletePost(ctx, 5, 10)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}
