package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/domain/entity"
	domainerrors "socialnet/internal/domain/errors"
	"socialnet/internal/domain/repository"
	"socialnet/internal/domain/service"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxTitleLength   = 255
	maxContentLength = 1024

	minSearchTermLength = 3
	maxSearchTermLength = 100

	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a new post by the author.
func (srv *postService) CreatePost(ctx context.Context, input usecase.CreatePostInput) (*entity.Post, error) {
	if err := validatePostFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	privacy := input.Privacy
	if privacy == "" {
		privacy = entity.PostPrivacyPublic
	}
	if !privacy.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown privacy level")
	}

	post := &entity.Post{
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Content:  input.Content,
		Privacy:  privacy,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, err
	}

	srv.publishActivity(ctx, service.EventPostCreated, post.AuthorID.String(), post.ID.String())

	srv.log(ctx).Debug("Post created", slog.Any("postID", post.ID))

	return post, nil
}

// GetPost retrieves a post the viewer is allowed to see. A post hidden by its
// privacy level reads as not found, never as forbidden.
func (srv *postService) GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	visible, err := srv.canView(ctx, post, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domainerrors.ErrNotFound.WrapMessage("post not found")
	}

	return post, nil
}

// ListByAuthor retrieves the author's posts visible to the viewer.
func (srv *postService) ListByAuthor(ctx context.Context, authorID, viewerID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	if authorID == viewerID {
		return posts, nil
	}

	mutual, err := srv.isMutualFollower(ctx, authorID, viewerID)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.Post, 0, len(posts))
	for _, post := range posts {
		switch post.Privacy {
		case entity.PostPrivacyPublic:
			visible = append(visible, post)
		case entity.PostPrivacyMutualFollowers:
			if mutual {
				visible = append(visible, post)
			}
		case entity.PostPrivacyPrivate:
			// Author only.
		}
	}

	return visible, nil
}

// SearchPosts performs a ranked full-text search over public posts.
func (srv *postService) SearchPosts(ctx context.Context, input usecase.SearchPostsInput) (*usecase.SearchPostsOutput, error) {
	termLen := utf8.RuneCountInString(input.Term)
	if termLen < minSearchTermLength || termLen > maxSearchTermLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("search term must be between 3 and 100 characters")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	// The repository restricts matches to posts the viewer may see, so the
	// page and the total count come from the same predicate.
	posts, total, err := srv.postRepo.SearchByText(ctx, input.Term, input.ViewerID, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Text search failed", slog.String("term", input.Term), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search posts")
	}

	return &usecase.SearchPostsOutput{Posts: posts, Total: total}, nil
}

// UpdatePost modifies one of the actor's own posts.
func (srv *postService) UpdatePost(ctx context.Context, input usecase.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, input.PostID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if post.AuthorID != input.ActorID {
			return domainerrors.ErrForbidden.WrapMessage("only the author may modify a post")
		}

		if input.Title != nil {
			post.Title = *input.Title
		}
		if input.Content != nil {
			post.Content = *input.Content
		}
		if input.Privacy != nil {
			if !input.Privacy.Valid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown privacy level")
			}
			post.Privacy = *input.Privacy
		}

		if err := validatePostFields(post.Title, post.Content); err != nil {
			return err
		}

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}

		updated = post

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update post", slog.Any("postID", input.PostID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeletePost removes one of the actor's own posts.
func (srv *postService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}

		if post.AuthorID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the author may delete a post")
		}

		if err := postRepo.Delete(ctx, postID); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete post", slog.Any("postID", postID), slog.Any("error", err))

		return err
	}

	return nil
}

// canView applies the post's privacy level for the given viewer.
func (srv *postService) canView(ctx context.Context, post *entity.Post, viewerID uuid.UUID) (bool, error) {
	if post.AuthorID == viewerID {
		return true, nil
	}

	switch post.Privacy {
	case entity.PostPrivacyPublic:
		return true, nil
	case entity.PostPrivacyPrivate:
		return false, nil
	case entity.PostPrivacyMutualFollowers:
		return srv.isMutualFollower(ctx, post.AuthorID, viewerID)
	}

	return false, nil
}

// isMutualFollower reports whether the author and viewer follow each other.
func (srv *postService) isMutualFollower(ctx context.Context, authorID, viewerID uuid.UUID) (bool, error) {
	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to load author's follow graph")
	}

	viewerFollowsAuthor := false
	for _, id := range author.Followers {
		if id == viewerID {
			viewerFollowsAuthor = true

			break
		}
	}

	return viewerFollowsAuthor && author.IsFollowing(viewerID), nil
}

func validatePostFields(title, content string) error {
	titleLen := utf8.RuneCountInString(title)
	if titleLen < 1 || titleLen > maxTitleLength {
		return domainerrors.ErrValidationFailed.WrapMessage("title must be between 1 and 255 characters")
	}

	contentLen := utf8.RuneCountInString(content)
	if contentLen < 1 || contentLen > maxContentLength {
		return domainerrors.ErrValidationFailed.WrapMessage("content must be between 1 and 1024 characters")
	}

	return nil
}

func (srv *postService) publishActivity(ctx context.Context, eventType, actorID, subjectID string) {
	event := &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := srv.publisher.PublishActivityEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event", slog.String("event_type", eventType), slog.Any("error", err))
	}
}
