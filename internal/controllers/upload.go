package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	apperrors "turftrack/pkg/errors"
	"turftrack/pkg/filestorage"
	"turftrack/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{fileStorage: fileStorage, logger: logger}
}

// UploadImage accepts one equipment photo under the "file" form field and
// returns the URL to reference from equipment or listing records.
func (c *UploadController) UploadImage(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "no file provided", err, nil), c.logger)
	}

	if fileHeader.Size > maxUploadBytes {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "file exceeds 10MB limit", nil,
				map[string]interface{}{"size": fileHeader.Size}), c.logger)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "only jpg, jpeg, png and webp images are accepted", nil,
				map[string]interface{}{"extension": ext}), c.logger)
	}

	url, err := c.fileStorage.Save(ctx.Request().Context(), fileHeader)
	if err != nil {
		c.logger.Error("failed to save uploaded file", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "failed to save file", err, nil), c.logger)
	}

	return utils.SuccessResponse(ctx, map[string]interface{}{"url": url}, "file uploaded", http.StatusOK)
}
