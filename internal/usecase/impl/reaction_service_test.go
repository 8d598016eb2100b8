package impl

import (
	"context"
	"testing"

	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/repository"
	mockRepo "socialnet/internal/mocks/repository"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reactionServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	reactionRepo *mockRepo.MockReactionRepository
	postRepo     *mockRepo.MockPostRepository
	commentRepo  *mockRepo.MockCommentRepository
}

func newReactionService(t *testing.T) (usecase.ReactionUsecase, *reactionServiceMocks) {
	t.Helper()

	mocks := &reactionServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		reactionRepo: mockRepo.NewMockReactionRepository(t),
		postRepo:     mockRepo.NewMockPostRepository(t),
		commentRepo:  mockRepo.NewMockCommentRepository(t),
	}

	svc := NewReactionService(ReactionServiceParams{
		TxManager:    mocks.txManager,
		ReactionRepo: mocks.reactionRepo,
		PostRepo:     mocks.postRepo,
		CommentRepo:  mocks.commentRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func TestReactionService_AddReaction_Success(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)
			mockReactionRepo := mockRepo.NewMockReactionRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockFactory.EXPECT().ReactionRepo().Return(mockReactionRepo)
			mockPostRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
			mockReactionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Reaction")).
				Run(func(ctx context.Context, reaction *entity.Reaction) {
					reaction.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	reaction, err := svc.AddReaction(ctx, usecase.AddReactionInput{
		AuthorID:     authorID,
		TargetID:     postID,
		TargetType:   entity.ReactionTargetPost,
		ReactionType: entity.ReactionTypeLove,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ReactionTypeLove, reaction.ReactionType)
	assert.NotEqual(t, uuid.Nil, reaction.ID)
}

func TestReactionService_AddReaction_Validation(t *testing.T) {
	svc, _ := newReactionService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.AddReactionInput
	}{
		{
			"unknown target type",
			usecase.AddReactionInput{
				AuthorID:     uuid.New(),
				TargetID:     uuid.New(),
				TargetType:   entity.ReactionTarget("story"),
				ReactionType: entity.ReactionTypeLike,
			},
		},
		{
			"unknown reaction type",
			usecase.AddReactionInput{
				AuthorID:     uuid.New(),
				TargetID:     uuid.New(),
				TargetType:   entity.ReactionTargetPost,
				ReactionType: entity.ReactionType("dislike"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddReaction(ctx, tt.input)
			requireAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestReactionService_AddReaction_Duplicate(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	commentID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockReactionRepo := mockRepo.NewMockReactionRepository(t)

			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)
			mockFactory.EXPECT().ReactionRepo().Return(mockReactionRepo)
			mockCommentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID}, nil)
			mockReactionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Reaction")).
				Return(repository.ErrDuplicateReaction)

			return fn(mockFactory)
		})

	_, err := svc.AddReaction(ctx, usecase.AddReactionInput{
		AuthorID:     uuid.New(),
		TargetID:     commentID,
		TargetType:   entity.ReactionTargetComment,
		ReactionType: entity.ReactionTypeLike,
	})

	requireAppErrorCode(t, err, "DUPLICATE_FIELD")
}

func TestReactionService_AddReaction_MissingTarget(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	postID := uuid.New()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

			return fn(mockFactory)
		})

	_, err := svc.AddReaction(ctx, usecase.AddReactionInput{
		AuthorID:     uuid.New(),
		TargetID:     postID,
		TargetType:   entity.ReactionTargetPost,
		ReactionType: entity.ReactionTypeWow,
	})

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestReactionService_RemoveReaction_Success(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	authorID := uuid.New()
	targetID := uuid.New()

	mocks.reactionRepo.EXPECT().
		Delete(ctx, authorID, targetID, entity.ReactionTargetPost).
		Return(nil)

	err := svc.RemoveReaction(ctx, authorID, targetID, entity.ReactionTargetPost)

	require.NoError(t, err)
}

func TestReactionService_RemoveReaction_NotFound(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	authorID := uuid.New()
	targetID := uuid.New()

	mocks.reactionRepo.EXPECT().
		Delete(ctx, authorID, targetID, entity.ReactionTargetComment).
		Return(repository.ErrReactionNotFound)

	err := svc.RemoveReaction(ctx, authorID, targetID, entity.ReactionTargetComment)

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestReactionService_GetReactionCounts(t *testing.T) {
	svc, mocks := newReactionService(t)
	ctx := context.Background()
	targetID := uuid.New()

	counts := &entity.ReactionCount{
		Counts: map[entity.ReactionType]int64{
			entity.ReactionTypeLike: 3,
			entity.ReactionTypeHaha: 1,
		},
		Total: 4,
	}

	mocks.reactionRepo.EXPECT().
		CountByTarget(ctx, targetID, entity.ReactionTargetPost).
		Return(counts, nil)

	got, err := svc.GetReactionCounts(ctx, targetID, entity.ReactionTargetPost)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Total)
	assert.Equal(t, int64(3), got.Counts[entity.ReactionTypeLike])
}

func TestReactionService_GetReactionCounts_InvalidTarget(t *testing.T) {
	svc, _ := newReactionService(t)
	ctx := context.Background()

	_, err := svc.GetReactionCounts(ctx, uuid.New(), entity.ReactionTarget("story"))

	requireAppErrorCode(t, err, "VALIDATION_FAILED")
}
