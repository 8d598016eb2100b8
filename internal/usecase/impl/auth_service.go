// Package impl contains the application-specific business rules implementations.
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	codec     service.TokenCodec
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Codec     service.TokenCodec
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		codec:     params.Codec,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and issues a refresh token.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	password, err := entity.NewPassword(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				return domainerrors.ErrDuplicateField.WithDetails("email already registered")
			case errors.Is(err, repository.ErrDuplicateUsername):
				return domainerrors.ErrDuplicateField.WithDetails("username already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	refreshToken, err := srv.signToken(user, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	srv.publishActivity(ctx, service.EventUserRegistered, user.ID.String(), "")

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user, RefreshToken: refreshToken}, nil
}

// Login validates credentials and issues a refresh token.
// Every credential failure collapses into ErrInvalidCredentials so the
// response never reveals whether the email or the password was wrong.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	password, err := entity.NewPassword(input.Password)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	match, err := srv.hasher.Compare(password, user.PasswordHash)
	if err != nil {
		// The stored hash is corrupt. This is a server fault, not a
		// credentials problem, and it must not look like one.
		srv.log(ctx).Error("Stored password hash is not comparable", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to verify credentials")
	}
	if !match {
		return nil, domainerrors.ErrInvalidCredentials
	}

	refreshToken, err := srv.signToken(user, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{RefreshToken: refreshToken}, nil
}

// GetAccessToken exchanges a valid refresh token for a short-lived access token.
func (srv *authService) GetAccessToken(ctx context.Context, refreshToken string) (*usecase.AccessTokenOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrMissingToken
	}

	payload, err := srv.codec.Verify(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed", slog.Any("error", err))

		// Same opaque wording for expired and malformed tokens.
		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
	}

	if payload.Kind != entity.TokenKindRefresh {
		return nil, domainerrors.ErrInvalidTokenKind
	}

	accessToken, err := srv.codec.Sign(service.TokenPayload{
		UserID: payload.UserID,
		Email:  payload.Email,
		Kind:   entity.TokenKindAccess,
	}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.AccessTokenOutput{AccessToken: accessToken}, nil
}

func (srv *authService) signToken(user *entity.User, kind entity.TokenKind) (string, error) {
	token, err := srv.codec.Sign(service.TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Kind:   kind,
	}, 0)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return token, nil
}

// publishActivity emits an activity event. Publishing failures are logged and
// swallowed; the originating request already succeeded.
func (srv *authService) publishActivity(ctx context.Context, eventType, actorID, subjectID string) {
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
