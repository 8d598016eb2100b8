package impl

import (
	"context"
	"log/slog"
	"time"

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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser retrieves a user's profile by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser modifies a user's own profile. Only the account owner may change it.
func (srv *userService) UpdateUser(ctx context.Context, input usecase.UpdateUserInput) (*entity.User, error) {
	if input.ActorID != input.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot modify another user's account")
	}

	srv.log(ctx).Info("Updating user", slog.Any("userID", input.UserID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Username != nil {
			user.Username = *input.Username
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Password != nil {
			password, err := entity.NewPassword(*input.Password)
			if err != nil {
				return err
			}

			hashed, err := srv.hasher.Hash(password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}
			user.PasswordHash = hashed
		}

		if err := userRepo.Update(ctx, user); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return domainerrors.ErrDuplicateField.WithDetails("email already registered")
			case errors.Is(err, repository.ErrDuplicateUsername):
				return domainerrors.ErrDuplicateField.WithDetails("username already registered")
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update user", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the actor's own account.
func (srv *userService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID != userID {
		return domainerrors.ErrForbidden.WrapMessage("cannot delete another user's account")
	}

	srv.log(ctx).Info("Deleting user", slog.Any("userID", userID))

	err := srv.userRepo.Delete(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

// Follow records that the actor follows the target user.
func (srv *userService) Follow(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return domainerrors.ErrValidationFailed.WrapMessage("cannot follow yourself")
	}

	srv.log(ctx).Info("Creating follow relation", slog.Any("followerID", actorID), slog.Any("followeeID", targetID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user to follow not found")
			}

			return errors.Wrap(err, "failed to find user to follow")
		}

		if err := userRepo.CreateFollow(ctx, actorID, targetID); err != nil {
			if errors.Is(err, repository.ErrDuplicateFollow) {
				return domainerrors.ErrDuplicateField.WithDetails("already following this user")
			}

			return errors.Wrap(err, "failed to create follow relation")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create follow relation", slog.Any("followerID", actorID), slog.Any("error", err))

		return err
	}

	srv.publishActivity(ctx, service.EventUserFollowed, actorID.String(), targetID.String())

	return nil
}

func (srv *userService) publishActivity(ctx context.Context, eventType, actorID, subjectID string) {
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
