package impl

import (
	"context"
	"log/slog"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/domain/entity"
	domainerrors "socialnet/internal/domain/errors"
	"socialnet/internal/domain/repository"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reactionService implements the ReactionUsecase interface.
type reactionService struct {
	txManager    repository.TransactionManager
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	logger       *slog.Logger
}

// ReactionServiceParams holds dependencies for ReactionService, injected by Fx.
type ReactionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReactionRepo repository.ReactionRepository
	PostRepo     repository.PostRepository
	CommentRepo  repository.CommentRepository
	Logger       *slog.Logger
}

// NewReactionService is the constructor for reactionService.
func NewReactionService(params ReactionServiceParams) usecase.ReactionUsecase {
	return &reactionService{
		txManager:    params.TxManager,
		reactionRepo: params.ReactionRepo,
		postRepo:     params.PostRepo,
		commentRepo:  params.CommentRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddReaction records the author's reaction on a target.
func (srv *reactionService) AddReaction(ctx context.Context, input usecase.AddReactionInput) (*entity.Reaction, error) {
	if !input.TargetType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown reaction target type")
	}
	if !input.ReactionType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown reaction type")
	}

	reaction := &entity.Reaction{
		AuthorID:     input.AuthorID,
		TargetID:     input.TargetID,
		TargetType:   input.TargetType,
		ReactionType: input.ReactionType,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.ensureTargetExists(ctx, repoFactory, input.TargetID, input.TargetType); err != nil {
			return err
		}

		if err := repoFactory.ReactionRepo().Create(ctx, reaction); err != nil {
			if errors.Is(err, repository.ErrDuplicateReaction) {
				return domainerrors.ErrDuplicateField.WithDetails("already reacted to this target")
			}

			return errors.Wrap(err, "failed to create reaction")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add reaction", slog.Any("targetID", input.TargetID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Reaction added", slog.Any("reactionID", reaction.ID))

	return reaction, nil
}

// RemoveReaction deletes the author's reaction on a target.
func (srv *reactionService) RemoveReaction(ctx context.Context, authorID, targetID uuid.UUID, targetType entity.ReactionTarget) error {
	if !targetType.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown reaction target type")
	}

	err := srv.reactionRepo.Delete(ctx, authorID, targetID, targetType)
	if err != nil {
		if errors.Is(err, repository.ErrReactionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("reaction not found")
		}

		return errors.Wrap(err, "failed to remove reaction")
	}

	return nil
}

// GetReactionCounts aggregates reactions on a target by type.
func (srv *reactionService) GetReactionCounts(ctx context.Context, targetID uuid.UUID, targetType entity.ReactionTarget) (*entity.ReactionCount, error) {
	if !targetType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown reaction target type")
	}

	counts, err := srv.reactionRepo.CountByTarget(ctx, targetID, targetType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reactions")
	}

	return counts, nil
}

// ensureTargetExists verifies the reacted-to post or comment is present.
func (srv *reactionService) ensureTargetExists(ctx context.Context, repoFactory repository.RepositoryFactory, targetID uuid.UUID, targetType entity.ReactionTarget) error {
	switch targetType {
	case entity.ReactionTargetPost:
		if _, err := repoFactory.PostRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("post not found")
			}

			return errors.Wrap(err, "failed to find post")
		}
	case entity.ReactionTargetComment:
		if _, err := repoFactory.CommentRepo().FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("comment not found")
			}

			return errors.Wrap(err, "failed to find comment")
		}
	}

	return nil
}
