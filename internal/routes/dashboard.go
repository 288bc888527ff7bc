package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secure *echo.Group, dashboardCtrl *controllers.DashboardController, reportCtrl *controllers.ReportController) {
	secure.GET("/dashboard/stats", dashboardCtrl.GetStats)
	secure.GET("/reports/maintenance", reportCtrl.GetMaintenanceReport)
}
