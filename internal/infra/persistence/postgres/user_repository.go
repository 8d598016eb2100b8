package postgres

import (
	"context"

	"socialnet/internal/domain/entity"
	domainerrors "socialnet/internal/domain/errors"
	"socialnet/internal/domain/repository"
	"socialnet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the follow graph.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "id = ?", id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address. The password
// hash is part of the row and comes along for credential checks.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "email = ?", email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByUsername retrieves a single user by their unique handle.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	userM, err := repo.findOne(ctx, "username = ?", username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(userM), nil
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*model.UserModel, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Followers").
		Preload("Following").
		Where(cond, arg).
		First(&userM).Error
	if err != nil {
		return nil, err
	}

	return &userM, nil
}

// Create persists a new user entity. Unique-constraint collisions are mapped
// to field-level duplicate errors so the caller can report which field clashed.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.mapDuplicate(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Carry the generated ID and timestamps back onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":      userM.Username,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.mapDuplicate(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateFollow records that follower follows following. The composite primary
// key on the follows table rejects duplicates.
func (repo *userRepository) CreateFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	follow := model.FollowModel{
		FollowerID: followerID,
		FolloweeID: followingID,
	}

	if err := repo.db.WithContext(ctx).Create(&follow).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFollow
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create follow relation")
	}

	return nil
}

// mapDuplicate picks the field-level duplicate error from the violated
// constraint. An unrecognized constraint still reads as a duplicate email
// since that is the login identifier.
func (repo *userRepository) mapDuplicate(err error) error {
	if violatesConstraint(err, "username") {
		return repository.ErrDuplicateUsername
	}

	return repository.ErrDuplicateEmail
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	followers := make([]uuid.UUID, 0, len(data.Followers))
	for _, f := range data.Followers {
		followers = append(followers, f.FollowerID)
	}

	following := make([]uuid.UUID, 0, len(data.Following))
	for _, f := range data.Following {
		following = append(following, f.FolloweeID)
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Followers:    followers,
		Following:    following,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// The follow graph is managed through its own table and never written here.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
