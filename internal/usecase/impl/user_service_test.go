package impl

import (
	"context"
	"testing"

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

type userServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockService.MockPasswordHasher
	publisher *mockService.MockEventPublisher
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockService.NewMockPasswordHasher(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		Hasher:    mocks.hasher,
		Publisher: mocks.publisher,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func TestUserService_GetUser_Success(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := svc.GetUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetUser(ctx, userID)

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestUserService_UpdateUser_ForbiddenForOtherAccount(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.UpdateUser(context.Background(), usecase.UpdateUserInput{
		ActorID: uuid.New(),
		UserID:  uuid.New(),
	})

	requireAppErrorCode(t, err, "FORBIDDEN")
}

func TestUserService_UpdateUser_OwnerIdentifiedByValue(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()

	// Two independently parsed IDs with the same bytes must compare equal;
	// ownership checks go by value, never by instance.
	raw := uuid.New().String()
	actorID, err := uuid.Parse(raw)
	require.NoError(t, err)
	userID, err := uuid.Parse(raw)
	require.NoError(t, err)

	newName := "alice-renamed"
	user := &entity.User{ID: userID, Username: "alice"}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			return fn(mockFactory)
		})

	updated, err := svc.UpdateUser(ctx, usecase.UpdateUserInput{
		ActorID:  actorID,
		UserID:   userID,
		Username: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", updated.Username)
}

func TestUserService_UpdateUser_RehashesNewPassword(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	newPassword := "NewStrongPass1!"
	user := &entity.User{ID: userID, PasswordHash: "$2b$10$oldoldoldoldoldoldoldoldoldoldoldoldoldoldoldoldoldo"}

	mocks.hasher.EXPECT().
		Hash(mock.AnythingOfType("entity.Password")).
		Return("$2b$10$newnewnewnewnewnewnewnewnewnewnewnewnewnewnewnewnewn", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
					return u.PasswordHash == "$2b$10$newnewnewnewnewnewnewnewnewnewnewnewnewnewnewnewnewn"
				})).
				Return(nil)

			return fn(mockFactory)
		})

	_, err := svc.UpdateUser(ctx, usecase.UpdateUserInput{
		ActorID:  userID,
		UserID:   userID,
		Password: &newPassword,
	})

	require.NoError(t, err)
}

func TestUserService_DeleteUser_ForbiddenForOtherAccount(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.DeleteUser(context.Background(), uuid.New(), uuid.New())

	requireAppErrorCode(t, err, "FORBIDDEN")
}

func TestUserService_DeleteUser_Success(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	err := svc.DeleteUser(ctx, userID, userID)

	require.NoError(t, err)
}

func TestUserService_Follow_Success(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	actorID := uuid.New()
	targetID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
			mockUserRepo.EXPECT().CreateFollow(ctx, actorID, targetID).Return(nil)

			return fn(mockFactory)
		})

	mocks.publisher.EXPECT().
		PublishActivityEvent(ctx, mock.MatchedBy(func(e *service.ActivityEvent) bool {
			return e.EventType == service.EventUserFollowed &&
				e.ActorID == actorID.String() &&
				e.SubjectID == targetID.String()
		})).
		Return(nil)

	err := svc.Follow(ctx, actorID, targetID)

	require.NoError(t, err)
}

func TestUserService_Follow_RejectsSelfFollow(t *testing.T) {
	svc, _ := newUserService(t)
	id := uuid.New()

	err := svc.Follow(context.Background(), id, id)

	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUserService_Follow_Duplicate(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	actorID := uuid.New()
	targetID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(&entity.User{ID: targetID}, nil)
			mockUserRepo.EXPECT().CreateFollow(ctx, actorID, targetID).Return(repository.ErrDuplicateFollow)

			return fn(mockFactory)
		})

	err := svc.Follow(ctx, actorID, targetID)

	requireAppErrorCode(t, err, "DUPLICATE_FIELD")
}

func TestUserService_Follow_TargetNotFound(t *testing.T) {
	svc, mocks := newUserService(t)
	ctx := context.Background()
	actorID := uuid.New()
	targetID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := svc.Follow(ctx, actorID, targetID)

	requireAppErrorCode(t, err, "NOT_FOUND")
}
