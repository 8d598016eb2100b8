package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/delivery/http/response"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CommentRequest represents the request body for creating or editing a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=1024"`
}

// CreateComment handles attaching a comment to a post.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid comment input")
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), usecase.CreateCommentInput{
		AuthorID: identity.UserID,
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment), "Comment created successfully")
}

// ListComments handles listing one page of a post's comments.
func (h *CommentHandler) ListComments(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.commentUC.ListComments(c.Request().Context(), usecase.ListCommentsInput{
		ViewerID: identity.UserID,
		PostID:   postID,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"comments": toCommentResponses(output.Comments),
		"total":    output.Total,
	}

	return response.Success(c, http.StatusOK, data, "")
}

// UpdateComment handles editing one of the caller's own comments.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid comment input")
	}

	comment, err := h.commentUC.UpdateComment(c.Request().Context(), identity.UserID, commentID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponse(comment), "Comment updated successfully")
}

// DeleteComment handles removing one of the caller's own comments.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), identity.UserID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
