package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/register", ctrl.Register)
	public.POST("/auth/login", ctrl.Login)
	public.POST("/auth/refresh", ctrl.Refresh)
	secure.GET("/auth/me", ctrl.GetProfile)
}
