package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/delivery/http/response"
	"socialnet/internal/domain/entity"
	"socialnet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReactionHandlerParams holds dependencies for ReactionHandler, injected by Fx.
type ReactionHandlerParams struct {
	fx.In

	ReactionUC usecase.ReactionUsecase
	Logger     *slog.Logger
}

// ReactionHandler holds dependencies for reaction handlers.
type ReactionHandler struct {
	reactionUC usecase.ReactionUsecase
	logger     *slog.Logger
}

// NewReactionHandler is the constructor for ReactionHandler.
func NewReactionHandler(params ReactionHandlerParams) *ReactionHandler {
	return &ReactionHandler{
		reactionUC: params.ReactionUC,
		logger:     params.Logger,
	}
}

// AddReactionRequest represents the request body for reacting to content.
type AddReactionRequest struct {
	TargetID   string `json:"target_id" validate:"required,uuid"`
	TargetType string `json:"target_type" validate:"required,oneof=post comment"`
	Type       string `json:"type" validate:"required,oneof=like haha love sad wow angry"`
}

// RemoveReactionRequest represents the request body for withdrawing a reaction.
type RemoveReactionRequest struct {
	TargetID   string `json:"target_id" validate:"required,uuid"`
	TargetType string `json:"target_type" validate:"required,oneof=post comment"`
}

// AddReaction handles recording the caller's reaction on a post or comment.
func (h *ReactionHandler) AddReaction(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req AddReactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reaction input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid reaction input")
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid target ID")
	}

	reaction, err := h.reactionUC.AddReaction(c.Request().Context(), usecase.AddReactionInput{
		AuthorID:     identity.UserID,
		TargetID:     targetID,
		TargetType:   entity.ReactionTarget(req.TargetType),
		ReactionType: entity.ReactionType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReactionResponse(reaction), "Reaction added successfully")
}

// RemoveReaction handles withdrawing the caller's reaction from a target.
func (h *ReactionHandler) RemoveReaction(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var req RemoveReactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reaction input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid reaction input")
	}

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid target ID")
	}

	if err := h.reactionUC.RemoveReaction(c.Request().Context(), identity.UserID, targetID, entity.ReactionTarget(req.TargetType)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reaction removed successfully")
}

// GetReactionCounts handles aggregating reactions on a target by type.
func (h *ReactionHandler) GetReactionCounts(c echo.Context) error {
	if _, ok := deliverycontext.GetIdentity(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	targetID, err := uuid.Parse(c.QueryParam("target_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid target ID")
	}

	counts, err := h.reactionUC.GetReactionCounts(c.Request().Context(), targetID, entity.ReactionTarget(c.QueryParam("target_type")))
	if err != nil {
		return errors.WithStack(err)
	}

	data := map[string]any{
		"counts": counts.Counts,
		"total":  counts.Total,
	}

	return response.Success(c, http.StatusOK, data, "")
}
