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
	"gorm.io/gorm/clause"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByID retrieves a single post by ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel

	err := repo.db.WithContext(ctx).First(&postM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByAuthor retrieves all posts written by the given author, newest first.
func (repo *postRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postsM []model.PostModel

	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&postsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find posts by author")
	}

	posts := make([]*entity.Post, 0, len(postsM))
	for i := range postsM {
		posts = append(posts, toPostDomain(&postsM[i]))
	}

	return posts, nil
}

// SearchByText performs a full-text search over title and content using
// PostgreSQL's tsvector matching, ranked by relevance. The visibility
// predicate is applied to both the count and the page so they agree.
func (repo *postRepository) SearchByText(ctx context.Context, term string, viewerID uuid.UUID, offset, limit int) ([]*entity.Post, int64, error) {
	matchExpr := "to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', ?)"
	visibleExpr := "(privacy = ? OR author_id = ?)"

	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where(matchExpr, term).
		Where(visibleExpr, entity.PostPrivacyPublic, viewerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count text search matches")
	}

	var postsM []model.PostModel
	err = repo.db.WithContext(ctx).
		Where(matchExpr, term).
		Where(visibleExpr, entity.PostPrivacyPublic, viewerID).
		Order(clause.OrderBy{
			Expression: gorm.Expr("ts_rank(to_tsvector('english', title || ' ' || content), plainto_tsquery('english', ?)) DESC", term),
		}).
		Offset(offset).
		Limit(limit).
		Find(&postsM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search posts by text")
	}

	posts := make([]*entity.Post, 0, len(postsM))
	for i := range postsM {
		posts = append(posts, toPostDomain(&postsM[i]))
	}

	return posts, total, nil
}

// Update modifies an existing post row.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":   post.Title,
			"content": post.Content,
			"privacy": string(post.Privacy),
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by ID.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Privacy:   entity.PostPrivacy(data.Privacy),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:       data.ID,
		AuthorID: data.AuthorID,
		Title:    data.Title,
		Content:  data.Content,
		Privacy:  string(data.Privacy),
	}
}
