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

// reactionRepository implements the domain.ReactionRepository interface using GORM.
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository is the constructor for reactionRepository.
func NewReactionRepository(db *gorm.DB) repository.ReactionRepository {
	return &reactionRepository{db: db}
}

// Create persists a new reaction. The unique index over author and target
// turns a second reaction on the same target into ErrDuplicateReaction.
func (repo *reactionRepository) Create(ctx context.Context, reaction *entity.Reaction) error {
	reactionM := fromReactionDomain(reaction)

	if err := repo.db.WithContext(ctx).Create(reactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReaction
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReactionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reaction")
	}

	reaction.ID = reactionM.ID
	reaction.CreatedAt = reactionM.CreatedAt

	return nil
}

// FindByAuthorAndTarget retrieves the author's reaction on a target, if any.
func (repo *reactionRepository) FindByAuthorAndTarget(ctx context.Context, authorID, targetID uuid.UUID) (*entity.Reaction, error) {
	var reactionM model.ReactionModel

	err := repo.db.WithContext(ctx).
		Where("author_id = ? AND target_id = ?", authorID, targetID).
		First(&reactionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find reaction")
	}

	return toReactionDomain(&reactionM), nil
}

// Delete removes the author's reaction on a target.
func (repo *reactionRepository) Delete(ctx context.Context, authorID, targetID uuid.UUID, targetType entity.ReactionTarget) error {
	result := repo.db.WithContext(ctx).
		Where("author_id = ? AND target_id = ? AND target_type = ?", authorID, targetID, string(targetType)).
		Delete(&model.ReactionModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReactionNotFound
	}

	return nil
}

// CountByTarget aggregates reactions on a target by type with a single
// grouped query. Types without reactions appear with a zero count.
func (repo *reactionRepository) CountByTarget(ctx context.Context, targetID uuid.UUID, targetType entity.ReactionTarget) (*entity.ReactionCount, error) {
	var rows []struct {
		Type  string
		Count int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ReactionModel{}).
		Select("type, COUNT(*) AS count").
		Where("target_id = ? AND target_type = ?", targetID, string(targetType)).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reactions")
	}

	counts := make(map[entity.ReactionType]int64, len(entity.ReactionTypes))
	for _, t := range entity.ReactionTypes {
		counts[t] = 0
	}

	var total int64
	for _, row := range rows {
		counts[entity.ReactionType(row.Type)] = row.Count
		total += row.Count
	}

	return &entity.ReactionCount{Counts: counts, Total: total}, nil
}

// toReactionDomain converts a GORM ReactionModel to a domain Reaction entity.
func toReactionDomain(data *model.ReactionModel) *entity.Reaction {
	if data == nil {
		return nil
	}

	return &entity.Reaction{
		ID:           data.ID,
		AuthorID:     data.AuthorID,
		TargetID:     data.TargetID,
		TargetType:   entity.ReactionTarget(data.TargetType),
		ReactionType: entity.ReactionType(data.Type),
		CreatedAt:    data.CreatedAt,
	}
}

// fromReactionDomain converts a domain Reaction entity to a GORM ReactionModel.
func fromReactionDomain(data *entity.Reaction) *model.ReactionModel {
	if data == nil {
		return nil
	}

	return &model.ReactionModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		TargetID:   data.TargetID,
		TargetType: string(data.TargetType),
		Type:       string(data.ReactionType),
	}
}
