package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/mock"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "board-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(repo, cfg, logger.Nop()), repo
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// the plain text must never reach the repository
			assert.Empty(t, u.Password)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw-123")))
			u.UserID = 1
			return u, nil
		})

	created, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw-123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestRegisterUser_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(ctx, models.User{Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.User{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw-123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(ctx, models.User{Username: "alice", Password: "pw-123"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(ctx, models.User{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Username: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_NormalisesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	// tamper with the signature
	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
}
