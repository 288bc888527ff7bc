package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMarketplaceRouter(secure *echo.Group, ctrl *controllers.MarketplaceController) {
	secure.GET("/marketplace", ctrl.BrowseListings)
	secure.GET("/marketplace/:id", ctrl.GetListing)
	secure.GET("/my-listings", ctrl.GetMyListings)
	secure.POST("/marketplace", ctrl.CreateListing)
	secure.PUT("/marketplace/:id/status", ctrl.UpdateListingStatus)
	secure.DELETE("/marketplace/:id", ctrl.DeleteListing)
}
