package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUploadRouter(secure *echo.Group, ctrl *controllers.UploadController) {
	secure.POST("/uploads", ctrl.UploadImage)
}
