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

type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
	logger             *zap.Logger
}

func NewMaintenanceController(maintenanceService *services.MaintenanceService, logger *zap.Logger) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService, logger: logger}
}

func (c *MaintenanceController) GetMaintenanceLogs(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var filter dto.MaintenanceLogFilterDTO
	if raw := ctx.QueryParam("equipment_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "invalid equipment_id", err, nil), c.logger)
		}
		filter.EquipmentID = id
	}

	res, err := c.maintenanceService.GetMaintenanceLogs(ctx.Request().Context(), userID, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance logs", http.StatusOK)
}

func (c *MaintenanceController) CreateMaintenanceLog(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateMaintenanceLogDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.CreateMaintenanceLog(ctx.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "maintenance log created", http.StatusCreated)
}

func (c *MaintenanceController) DeleteMaintenanceLog(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.maintenanceService.DeleteMaintenanceLog(ctx.Request().Context(), userID, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "maintenance log deleted", http.StatusOK)
}
