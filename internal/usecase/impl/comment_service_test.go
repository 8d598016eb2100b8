package impl

import (
	"context"
	"strings"
	"testing"

	"socialnet/internal/domain/entity"
	domainerrors "socialnet/internal/domain/errors"
	"socialnet/internal/domain/repository"
	mockRepo "socialnet/internal/mocks/repository"
	mockUsecase "socialnet/internal/mocks/usecase"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	postUsecase *mockUsecase.MockPostUsecase
}

func newCommentService(t *testing.T) (usecase.CommentUsecase, *commentServiceMocks) {
	t.Helper()

	mocks := &commentServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		postUsecase: mockUsecase.NewMockPostUsecase(t),
	}

	svc := NewCommentService(CommentServiceParams{
		TxManager:   mocks.txManager,
		CommentRepo: mocks.commentRepo,
		PostUsecase: mocks.postUsecase,
		Logger:      newDiscardLogger(),
	})

	return svc, mocks
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()

	mocks.postUsecase.EXPECT().
		GetPost(ctx, postID, authorID).
		Return(&entity.Post{ID: postID}, nil)
	mocks.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = commentID
		}).
		Return(nil)

	comment, err := svc.CreateComment(ctx, usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  "Nice post.",
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, postID, comment.PostID)
}

func TestCommentService_CreateComment_HiddenPostReadsAsNotFound(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	// Commenting shares the read path's visibility check.
	mocks.postUsecase.EXPECT().
		GetPost(ctx, postID, authorID).
		Return(nil, domainerrors.ErrNotFound.WrapMessage("post not found"))

	_, err := svc.CreateComment(ctx, usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  "hi",
	})

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	svc, _ := newCommentService(t)
	ctx := context.Background()

	for _, content := range []string{"", strings.Repeat("a", 1025)} {
		_, err := svc.CreateComment(ctx, usecase.CreateCommentInput{
			AuthorID: uuid.New(),
			PostID:   uuid.New(),
			Content:  content,
		})
		requireAppErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestCommentService_ListComments_Paginates(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	viewerID := uuid.New()
	postID := uuid.New()

	comments := []*entity.Comment{
		{ID: uuid.New(), PostID: postID, Content: "first"},
		{ID: uuid.New(), PostID: postID, Content: "second"},
	}

	mocks.postUsecase.EXPECT().
		GetPost(ctx, postID, viewerID).
		Return(&entity.Post{ID: postID}, nil)
	mocks.commentRepo.EXPECT().
		FindByPost(ctx, postID, 0, defaultCommentPageSize).
		Return(comments, int64(42), nil)

	out, err := svc.ListComments(ctx, usecase.ListCommentsInput{
		ViewerID: viewerID,
		PostID:   postID,
	})

	require.NoError(t, err)
	assert.Len(t, out.Comments, 2)
	assert.Equal(t, int64(42), out.Total)
}

func TestCommentService_ListComments_ClampsLimit(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	viewerID := uuid.New()
	postID := uuid.New()

	mocks.postUsecase.EXPECT().
		GetPost(ctx, postID, viewerID).
		Return(&entity.Post{ID: postID}, nil)
	mocks.commentRepo.EXPECT().
		FindByPost(ctx, postID, 0, maxCommentPageSize).
		Return([]*entity.Comment{}, int64(0), nil)

	_, err := svc.ListComments(ctx, usecase.ListCommentsInput{
		ViewerID: viewerID,
		PostID:   postID,
		Offset:   -5,
		Limit:    9999,
	})

	require.NoError(t, err)
}

func TestCommentService_UpdateComment_Success(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	authorID := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), AuthorID: authorID, Content: "old"}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
			mockCommentRepo.EXPECT().Update(ctx, comment).Return(nil)

			return fn(mockFactory)
		})

	updated, err := svc.UpdateComment(ctx, authorID, comment.ID, "new content")

	require.NoError(t, err)
	assert.Equal(t, "new content", updated.Content)
}

func TestCommentService_UpdateComment_OnlyAuthor(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	comment := &entity.Comment{ID: uuid.New(), AuthorID: uuid.New(), Content: "old"}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

			return fn(mockFactory)
		})

	_, err := svc.UpdateComment(ctx, uuid.New(), comment.ID, "hijack")

	requireAppErrorCode(t, err, "FORBIDDEN")
}

func TestCommentService_DeleteComment_OnlyAuthor(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	comment := &entity.Comment{ID: uuid.New(), AuthorID: uuid.New()}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

			return fn(mockFactory)
		})

	err := svc.DeleteComment(ctx, uuid.New(), comment.ID)

	requireAppErrorCode(t, err, "FORBIDDEN")
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	svc, mocks := newCommentService(t)
	ctx := context.Background()
	commentID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

			return fn(mockFactory)
		})

	err := svc.DeleteComment(ctx, uuid.New(), commentID)

	requireAppErrorCode(t, err, "NOT_FOUND")
}
