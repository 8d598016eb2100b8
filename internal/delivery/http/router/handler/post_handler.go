package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/delivery/http/response"
	"socialnet/internal/domain/entity"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler holds dependencies for post handlers.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest represents the request body for publishing a post.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=1024"`
	Privacy string `json:"privacy" validate:"omitempty,oneof=public mutual_followers private"`
}

// UpdatePostRequest represents the request body for editing a post.
// Omitted fields are left unchanged.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=255"`
	Content *string `json:"content" validate:"omitempty,max=1024"`
	Privacy *string `json:"privacy" validate:"omitempty,oneof=public mutual_followers private"`
}

// CreatePost handles publishing a new post.
func (h *PostHandler) CreatePost(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid post input")
	}

	post, err := h.postUC.CreatePost(c.Request().Context(), usecase.CreatePostInput{
		AuthorID: identity.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Privacy:  entity.PostPrivacy(req.Privacy),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created successfully")
}

// GetPost handles retrieving a single post, subject to its privacy level.
func (h *PostHandler) GetPost(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	post, err := h.postUC.GetPost(c.Request().Context(), postID, identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "")
}

// ListByAuthor handles listing an author's posts visible to the caller.
func (h *PostHandler) ListByAuthor(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	posts, err := h.postUC.ListByAuthor(c.Request().Context(), authorID, identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts), "")
}

// SearchPosts handles ranked full-text search over posts.
func (h *PostHandler) SearchPosts(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.postUC.SearchPosts(c.Request().Context(), usecase.SearchPostsInput{
		ViewerID: identity.UserID,
		Term:     c.QueryParam("q"),
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"posts": toPostResponses(output.Posts),
		"total": output.Total,
	}

	return response.Success(c, http.StatusOK, data, "")
}

// UpdatePost handles editing one of the caller's own posts.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid post input")
	}

	var privacy *entity.PostPrivacy
	if req.Privacy != nil {
		p := entity.PostPrivacy(*req.Privacy)
		privacy = &p
	}

	post, err := h.postUC.UpdatePost(c.Request().Context(), usecase.UpdatePostInput{
		ActorID: identity.UserID,
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
		Privacy: privacy,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "Post updated successfully")
}

// DeletePost handles removing one of the caller's own posts.
func (h *PostHandler) DeletePost(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.postUC.DeletePost(c.Request().Context(), identity.UserID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}
