package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/domain/entity"
	domainerrors "socialnet/internal/domain/errors"
	"socialnet/internal/domain/repository"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxCommentLength = 1024

	defaultCommentPageSize = 20
	maxCommentPageSize     = 100
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	postUsecase usecase.PostUsecase
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	PostUsecase usecase.PostUsecase
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		postUsecase: params.PostUsecase,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateComment attaches a comment to a post the author can see.
func (srv *commentService) CreateComment(ctx context.Context, input usecase.CreateCommentInput) (*entity.Comment, error) {
	if err := validateCommentContent(input.Content); err != nil {
		return nil, err
	}

	// Visibility is the same check a read would make; commenting on a post
	// you cannot see reads as not found.
	if _, err := srv.postUsecase.GetPost(ctx, input.PostID, input.AuthorID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		AuthorID: input.AuthorID,
		PostID:   input.PostID,
		Content:  input.Content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Any("postID", input.PostID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Comment created", slog.Any("commentID", comment.ID))

	return comment, nil
}

// ListComments retrieves one page of a post's comments.
func (srv *commentService) ListComments(ctx context.Context, input usecase.ListCommentsInput) (*usecase.ListCommentsOutput, error) {
	if _, err := srv.postUsecase.GetPost(ctx, input.PostID, input.ViewerID); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultCommentPageSize
	}
	if limit > maxCommentPageSize {
		limit = maxCommentPageSize
	}

	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	comments, total, err := srv.commentRepo.FindByPost(ctx, input.PostID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return &usecase.ListCommentsOutput{Comments: comments, Total: total}, nil
}

// UpdateComment modifies one of the actor's own comments.
func (srv *commentService) UpdateComment(ctx context.Context, actorID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	var updated *entity.Comment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if comment.AuthorID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the author may modify a comment")
		}

		comment.Content = content
		if err := commentRepo.Update(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to update comment")
		}

		updated = comment

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update comment", slog.Any("commentID", commentID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteComment removes one of the actor's own comments.
func (srv *commentService) DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		comment, err := commentRepo.FindByID(ctx, commentID)
		if err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}

		if comment.AuthorID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the author may delete a comment")
		}

		if err := commentRepo.Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete comment", slog.Any("commentID", commentID), slog.Any("error", err))

		return err
	}

	return nil
}

func validateCommentContent(content string) error {
	contentLen := utf8.RuneCountInString(content)
	if contentLen < 1 || contentLen > maxCommentLength {
		return domainerrors.ErrValidationFailed.WrapMessage("content must be between 1 and 1024 characters")
	}

	return nil
}
