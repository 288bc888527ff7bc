package routes

import (
	"turftrack/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runMessageRouter(secure *echo.Group, ctrl *controllers.MessageController) {
	secure.GET("/messages/conversations", ctrl.GetConversations)
	secure.GET("/messages/unread-count", ctrl.GetUnreadCount)
	secure.GET("/messages/:listingId/:otherUserId", ctrl.GetThread)
	secure.POST("/messages", ctrl.SendMessage)
	secure.PUT("/messages/read", ctrl.MarkAsRead)
}
