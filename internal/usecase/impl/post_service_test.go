package impl

import (
	"context"
	"strings"
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

type postServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	postRepo  *mockRepo.MockPostRepository
	userRepo  *mockRepo.MockUserRepository
	publisher *mockService.MockEventPublisher
}

func newPostService(t *testing.T) (usecase.PostUsecase, *postServiceMocks) {
	t.Helper()

	mocks := &postServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		postRepo:  mockRepo.NewMockPostRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		publisher: mockService.NewMockEventPublisher(t),
	}

	svc := NewPostService(PostServiceParams{
		TxManager: mocks.txManager,
		PostRepo:  mocks.postRepo,
		UserRepo:  mocks.userRepo,
		Publisher: mocks.publisher,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func TestPostService_CreatePost_Success(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()

	mocks.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = postID
		}).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishActivityEvent(ctx, mock.MatchedBy(func(e *service.ActivityEvent) bool {
			return e.EventType == service.EventPostCreated && e.SubjectID == postID.String()
		})).
		Return(nil)

	post, err := svc.CreatePost(ctx, usecase.CreatePostInput{
		AuthorID: authorID,
		Title:    "Hello",
		Content:  "First post.",
	})

	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	// Privacy defaults to public when unset.
	assert.Equal(t, entity.PostPrivacyPublic, post.Privacy)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()

	tests := []struct {
		name  string
		input usecase.CreatePostInput
	}{
		{"empty title", usecase.CreatePostInput{AuthorID: authorID, Title: "", Content: "x"}},
		{"title too long", usecase.CreatePostInput{AuthorID: authorID, Title: strings.Repeat("a", 256), Content: "x"}},
		{"empty content", usecase.CreatePostInput{AuthorID: authorID, Title: "t", Content: ""}},
		{"content too long", usecase.CreatePostInput{AuthorID: authorID, Title: "t", Content: strings.Repeat("a", 1025)}},
		{"unknown privacy", usecase.CreatePostInput{AuthorID: authorID, Title: "t", Content: "x", Privacy: entity.PostPrivacy("friends")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(ctx, tt.input)
			requireAppErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestPostService_GetPost_PrivateHiddenFromStranger(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: uuid.New(), AuthorID: uuid.New(), Privacy: entity.PostPrivacyPrivate}

	mocks.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	// Hidden posts read as not found, never as forbidden.
	_, err := svc.GetPost(ctx, post.ID, uuid.New())

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestPostService_GetPost_PrivateVisibleToAuthor(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyPrivate}

	mocks.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

	got, err := svc.GetPost(ctx, post.ID, authorID)

	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestPostService_GetPost_MutualFollowers(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	viewerID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyMutualFollowers}

	// Author and viewer follow each other.
	author := &entity.User{
		ID:        authorID,
		Followers: []uuid.UUID{viewerID},
		Following: []uuid.UUID{viewerID},
	}

	mocks.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, authorID).Return(author, nil)

	got, err := svc.GetPost(ctx, post.ID, viewerID)

	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
}

func TestPostService_GetPost_MutualFollowersOneWayHidden(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	viewerID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyMutualFollowers}

	// Viewer follows the author but not the other way around.
	author := &entity.User{
		ID:        authorID,
		Followers: []uuid.UUID{viewerID},
	}

	mocks.postRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, authorID).Return(author, nil)

	_, err := svc.GetPost(ctx, post.ID, viewerID)

	requireAppErrorCode(t, err, "NOT_FOUND")
}

func TestPostService_ListByAuthor_FiltersByPrivacy(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	viewerID := uuid.New()

	posts := []*entity.Post{
		{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyPublic},
		{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyMutualFollowers},
		{ID: uuid.New(), AuthorID: authorID, Privacy: entity.PostPrivacyPrivate},
	}

	mocks.postRepo.EXPECT().FindByAuthor(ctx, authorID).Return(posts, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, authorID).
		Return(&entity.User{ID: authorID}, nil)

	visible, err := svc.ListByAuthor(ctx, authorID, viewerID)

	require.NoError(t, err)
	// A stranger only sees the public post.
	require.Len(t, visible, 1)
	assert.Equal(t, entity.PostPrivacyPublic, visible[0].Privacy)
}

func TestPostService_SearchPosts_TermValidation(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	for _, term := range []string{"", "ab", strings.Repeat("a", 101)} {
		_, err := svc.SearchPosts(ctx, usecase.SearchPostsInput{Term: term})
		requireAppErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestPostService_SearchPosts_ClampsLimit(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	mocks.postRepo.EXPECT().
		SearchByText(ctx, "golang", viewerID, 0, maxSearchLimit).
		Return([]*entity.Post{}, int64(0), nil)

	_, err := svc.SearchPosts(ctx, usecase.SearchPostsInput{ViewerID: viewerID, Term: "golang", Limit: 5000})

	require.NoError(t, err)
}

func TestPostService_SearchPosts_ResultsMatchCount(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	viewerID := uuid.New()

	// The repository already scoped the matches to the viewer, so the page
	// must come back untouched, own private posts included, with the total
	// counting the same set.
	posts := []*entity.Post{
		{ID: uuid.New(), AuthorID: uuid.New(), Privacy: entity.PostPrivacyPublic},
		{ID: uuid.New(), AuthorID: viewerID, Privacy: entity.PostPrivacyPrivate},
	}

	mocks.postRepo.EXPECT().
		SearchByText(ctx, "golang", viewerID, 0, defaultSearchLimit).
		Return(posts, int64(2), nil)

	out, err := svc.SearchPosts(ctx, usecase.SearchPostsInput{ViewerID: viewerID, Term: "golang"})

	require.NoError(t, err)
	require.Len(t, out.Posts, 2)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, posts, out.Posts)
}

func TestPostService_UpdatePost_OnlyAuthor(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: uuid.New(), AuthorID: uuid.New(), Title: "t", Content: "c", Privacy: entity.PostPrivacyPublic}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

			return fn(mockFactory)
		})

	newTitle := "hijacked"
	_, err := svc.UpdatePost(ctx, usecase.UpdatePostInput{
		ActorID: uuid.New(),
		PostID:  post.ID,
		Title:   &newTitle,
	})

	requireAppErrorCode(t, err, "FORBIDDEN")
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	authorID := uuid.New()
	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Title: "t", Content: "c", Privacy: entity.PostPrivacyPublic}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
			mockPostRepo.EXPECT().Update(ctx, post).Return(nil)

			return fn(mockFactory)
		})

	newTitle := "updated title"
	updated, err := svc.UpdatePost(ctx, usecase.UpdatePostInput{
		ActorID: authorID,
		PostID:  post.ID,
		Title:   &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "updated title", updated.Title)
}

func TestPostService_DeletePost_OnlyAuthor(t *testing.T) {
	svc, mocks := newPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: uuid.New(), AuthorID: uuid.New()}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)
			mockPostRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)

			return fn(mockFactory)
		})

	err := svc.DeletePost(ctx, uuid.New(), post.ID)

	requireAppErrorCode(t, err, "FORBIDDEN")
}
