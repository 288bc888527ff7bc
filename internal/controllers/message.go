package controllers

import (
	"net/http"
	"strconv"

	"turftrack/internal/dto"
	"turftrack/internal/services"
	apperrors "turftrack/pkg/errors"
	"turftrack/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MessageController struct {
	messageService *services.MessageService
	logger         *zap.Logger
}

func NewMessageController(messageService *services.MessageService, logger *zap.Logger) *MessageController {
	return &MessageController{messageService: messageService, logger: logger}
}

func (c *MessageController) GetConversations(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.messageService.GetConversations(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "conversations", http.StatusOK)
}

// GetThread returns the two-party history for one listing, oldest first.
func (c *MessageController) GetThread(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	listingID, err := strconv.ParseUint(ctx.Param("listingId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid listing id", err, nil), c.logger)
	}
	otherUserID, err := strconv.ParseUint(ctx.Param("otherUserId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid user id", err, nil), c.logger)
	}

	res, err := c.messageService.GetThread(ctx.Request().Context(), userID, listingID, otherUserID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "message thread", http.StatusOK)
}

func (c *MessageController) SendMessage(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateMessageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.messageService.SendMessage(ctx.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "message sent", http.StatusCreated)
}

func (c *MessageController) MarkAsRead(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.MarkReadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.messageService.MarkAsRead(ctx.Request().Context(), userID, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "messages marked as read", http.StatusOK)
}

func (c *MessageController) GetUnreadCount(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	count, err := c.messageService.GetUnreadCount(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.UnreadCountDTO{Count: count}, "unread count", http.StatusOK)
}
