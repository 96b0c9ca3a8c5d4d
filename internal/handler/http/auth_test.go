package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/mock"
	"github.com/jaekyeom/go-bulletin-board/internal/service"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockAuthService, *mock.MockPostService) {
	t.Helper()
	authSvc := mock.NewMockAuthService(ctrl)
	postSvc := mock.NewMockPostService(ctrl)
	h := NewHandler(&service.Services{AuthService: authSvc, PostService: postSvc}, logger.Nop())
	return h, authSvc, postSvc
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		RegisterUser(gomock.Any(), models.User{Username: "alice", Password: "pw"}).
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRegister_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "username already taken", body.Message)
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_ReturnsTokenAndSetsCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	user := models.User{UserID: 7, Username: "alice"}
	authSvc.EXPECT().
		Login(gomock.Any(), models.User{Username: "alice", Password: "pw"}).
		Return(user, nil)
	authSvc.EXPECT().
		CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "tok-123", UserID: 7, Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tok-123", body.AccessToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "tok-123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrWrongPassword)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"bad"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid credentials", body.Message)
}

func TestMe_BearerCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.MeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Username)
}

func TestMe_CookieCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-cookie").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "tok-cookie"})
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMe_NoCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "stale").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_ExpiresCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, authSvc, _ := newTestHandler(t, ctrl)

	authSvc.EXPECT().
		ParseToken(gomock.Any(), "tok-123").
		Return(models.Token{UserID: 7, Username: "alice"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
