package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secure *echo.Group, ctrl *controllers.EquipmentController) {
	secure.GET("/equipment", ctrl.GetEquipmentList)
	secure.GET("/equipment/:id", ctrl.FindEquipment)
	secure.POST("/equipment", ctrl.CreateEquipment)
	secure.PUT("/equipment/:id", ctrl.UpdateEquipment)
	secure.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}
