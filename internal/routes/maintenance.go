package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMaintenanceRouter(secure *echo.Group, ctrl *controllers.MaintenanceController) {
	secure.GET("/maintenance", ctrl.GetMaintenanceLogs)
	secure.POST("/maintenance", ctrl.CreateMaintenanceLog)
	secure.DELETE("/maintenance/:id", ctrl.DeleteMaintenanceLog)
}
