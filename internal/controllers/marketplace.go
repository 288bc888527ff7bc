package controllers

import (
	"net/http"
	"strconv"

	"turftrack/internal/dto"
	"turftrack/internal/services"
	apperrors "turftrack/pkg/errors"
	"turftrack/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MarketplaceController struct {
	marketplaceService *services.MarketplaceService
	logger             *zap.Logger
}

func NewMarketplaceController(marketplaceService *services.MarketplaceService, logger *zap.Logger) *MarketplaceController {
	return &MarketplaceController{marketplaceService: marketplaceService, logger: logger}
}

// BrowseListings serves the public marketplace feed. lat, lng and distance
// are optional; a malformed number is a 400, not a silent skip.
func (c *MarketplaceController) BrowseListings(ctx echo.Context) error {
	query := dto.BrowseQueryDTO{Search: ctx.QueryParam("search")}

	var err error
	if query.Lat, err = parseNullFloat(ctx, "lat"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if query.Lng, err = parseNullFloat(ctx, "lng"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if query.MaxDistance, err = parseNullFloat(ctx, "distance"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if query.Lat.Valid != query.Lng.Valid {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "lat and lng must be provided together", nil, nil), c.logger)
	}

	res, err := c.marketplaceService.BrowseListings(ctx.Request().Context(), query)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "marketplace listings", http.StatusOK)
}

func (c *MarketplaceController) GetListing(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.marketplaceService.GetListing(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "listing found", http.StatusOK)
}

func (c *MarketplaceController) CreateListing(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateListingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.marketplaceService.CreateListing(ctx.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "listing created", http.StatusCreated)
}

func (c *MarketplaceController) GetMyListings(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.marketplaceService.GetSellerListings(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "seller listings", http.StatusOK)
}

func (c *MarketplaceController) UpdateListingStatus(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateListingStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.marketplaceService.UpdateListingStatus(ctx.Request().Context(), userID, id, payload.Status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "listing status updated", http.StatusOK)
}

func (c *MarketplaceController) DeleteListing(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.marketplaceService.RemoveListing(ctx.Request().Context(), userID, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "listing deleted", http.StatusOK)
}

func parseNullFloat(ctx echo.Context, name string) (null.Float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return null.Float64{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return null.Float64{}, apperrors.NewHttpError(http.StatusBadRequest,
			"invalid "+name, err, map[string]interface{}{"param": raw})
	}
	return null.Float64From(v), nil
}
