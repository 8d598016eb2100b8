package impl

import (
	"context"
	"testing"
	"time"

	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/repository"
	"socialnet/internal/domain/service"
	mockRepo "socialnet/internal/mocks/repository"
	mockService "socialnet/internal/mocks/service"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	codec     *mockService.MockTokenCodec
	publisher *mockService.MockEventPublisher
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		codec:     mockService.NewMockTokenCodec(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		Hasher:    mocks.hasher,
		Codec:     mocks.codec,
		Publisher: mocks.publisher,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("entity.Password")).
		Return("$2b$10$hashedhashedhashedhashedhashedhashedhashedhashedhash", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = userID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	mocks.codec.EXPECT().
		Sign(mock.MatchedBy(func(p service.TokenPayload) bool {
			return p.Kind == entity.TokenKindRefresh && p.UserID == userID
		}), time.Duration(0)).
		Return("refresh-token", nil)

	mocks.publisher.EXPECT().
		PublishActivityEvent(ctx, mock.MatchedBy(func(e *service.ActivityEvent) bool {
			return e.EventType == service.EventUserRegistered && e.ActorID == userID.String()
		})).
		Return(nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "StrongPass1!",
	})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
}

func TestAuthService_Register_RejectsWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("entity.Password")).
		Return("$2b$10$hashedhashedhashedhashedhashedhashedhashedhashedhash", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	_, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "taken@example.com",
		Password: "StrongPass1!",
	})

	requireAppErrorCode(t, err, "DUPLICATE_FIELD")
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2b$10$hashedhashedhashedhashedhashedhashedhashedhashedhash",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	mocks.hasher.EXPECT().
		Compare(mock.AnythingOfType("entity.Password"), user.PasswordHash).
		Return(true, nil)
	mocks.codec.EXPECT().
		Sign(mock.MatchedBy(func(p service.TokenPayload) bool {
			return p.Kind == entity.TokenKindRefresh && p.UserID == user.ID
		}), time.Duration(0)).
		Return("refresh-token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "StrongPass1!"})

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", out.RefreshToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "StrongPass1!"})

	requireAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$2b$10$hashedhashedhashedhashedhashedhashedhashedhashedhash",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	mocks.hasher.EXPECT().
		Compare(mock.AnythingOfType("entity.Password"), user.PasswordHash).
		Return(false, nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "WrongPass1!"})

	requireAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_MalformedPasswordLooksLikeWrongCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	// Failing invariants of the password itself must not produce a different
	// error than a wrong password would.
	_, err := svc.Login(context.Background(), usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "short",
	})

	requireAppErrorCode(t, err, "INVALID_CREDENTIALS")
}

func TestAuthService_Login_CorruptStoredHash(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "not-a-bcrypt-hash",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	mocks.hasher.EXPECT().
		Compare(mock.AnythingOfType("entity.Password"), user.PasswordHash).
		Return(false, assert.AnError)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "StrongPass1!"})

	requireAppErrorCode(t, err, "INTERNAL_ERROR")
}

func TestAuthService_GetAccessToken_Success(t *testing.T) {
	svc, mocks := newAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.codec.EXPECT().
		Verify("valid-refresh").
		Return(&service.TokenPayload{UserID: userID, Email: "alice@example.com", Kind: entity.TokenKindRefresh}, nil)
	mocks.codec.EXPECT().
		Sign(mock.MatchedBy(func(p service.TokenPayload) bool {
			return p.Kind == entity.TokenKindAccess && p.UserID == userID
		}), time.Duration(0)).
		Return("access-token", nil)

	out, err := svc.GetAccessToken(ctx, "valid-refresh")

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
}

func TestAuthService_GetAccessToken_MissingToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.GetAccessToken(context.Background(), "")

	requireAppErrorCode(t, err, "MISSING_TOKEN")
}

func TestAuthService_GetAccessToken_InvalidToken(t *testing.T) {
	svc, mocks := newAuthService(t)

	mocks.codec.EXPECT().
		Verify("garbage").
		Return(nil, service.ErrTokenInvalid)

	_, err := svc.GetAccessToken(context.Background(), "garbage")

	requireAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestAuthService_GetAccessToken_ExpiredReadsLikeInvalid(t *testing.T) {
	svc, mocks := newAuthService(t)

	mocks.codec.EXPECT().
		Verify("stale-refresh").
		Return(nil, service.ErrTokenExpired)
	mocks.codec.EXPECT().
		Verify("forged-refresh").
		Return(nil, service.ErrTokenInvalid)

	_, expiredErr := svc.GetAccessToken(context.Background(), "stale-refresh")
	_, invalidErr := svc.GetAccessToken(context.Background(), "forged-refresh")

	requireAppErrorCode(t, expiredErr, "UNAUTHORIZED")
	requireAppErrorCode(t, invalidErr, "UNAUTHORIZED")
	// The caller cannot tell an expired token from a forged one.
	assert.Equal(t, expiredErr.Error(), invalidErr.Error())
	assert.Contains(t, expiredErr.Error(), "invalid or expired token")
}

func TestAuthService_GetAccessToken_RejectsAccessToken(t *testing.T) {
	svc, mocks := newAuthService(t)

	// An access token is well formed but the wrong kind for this exchange.
	mocks.codec.EXPECT().
		Verify("an-access-token").
		Return(&service.TokenPayload{UserID: uuid.New(), Kind: entity.TokenKindAccess}, nil)

	_, err := svc.GetAccessToken(context.Background(), "an-access-token")

	requireAppErrorCode(t, err, "INVALID_TOKEN_KIND")
}
