package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jaekyeom/go-bulletin-board/internal/service"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer tok-123")
	return req
}

func TestListPosts_WireFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		ListPosts(gomock.Any()).
		Return([]models.Post{
			{ID: 2, Title: "newer", Content: "b", CreateAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 1, Title: "older", Content: "a", CreateAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodGet, "/api/posts", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	// the timestamp field is spelled "createAt" on the wire
	assert.Contains(t, rec.Body.String(), `"createAt"`)
	assert.NotContains(t, rec.Body.String(), `"createdAt"`)
	assert.NotContains(t, rec.Body.String(), `"author_id"`)

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, int64(2), posts[0].ID)
}

func TestCreatePost_CreatedWithEmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		CreatePost(gomock.Any(), int64(7), models.PostDraft{Title: "New", Content: "Body"}).
		Return(models.Post{ID: 10, Title: "New", Content: "Body", AuthorID: 7}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodPost, "/api/posts", `{"title":"New","content":"Body"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCreatePost_InvalidDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		CreatePost(gomock.Any(), int64(7), gomock.Any()).
		Return(models.Post{}, service.ErrInvalidDataProvided)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodPost, "/api/posts", `{"title":"","content":""}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeletePost_NoContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		DeletePost(gomock.Any(), int64(7), int64(5)).
		Return(nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/posts/5", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeletePost_ForeignPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		DeletePost(gomock.Any(), int64(7), int64(5)).
		Return(service.ErrNotPostAuthor)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/posts/5", ""))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "access denied", body.Message)
}

func TestDeletePost_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, postSvc := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
	postSvc.EXPECT().
		DeletePost(gomock.Any(), int64(7), int64(5)).
		Return(store.ErrPostNotFound)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/posts/5", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/posts/abc", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPosts_RequireCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
