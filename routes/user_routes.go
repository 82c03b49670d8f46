package routes

import (
	"github.com/ask-stack/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(protected *gin.RouterGroup, reputationController *controllers.ReputationController, notificationController *controllers.NotificationController) {
	users := protected.Group("/users")
	{
		users.GET("/:id/reputation", reputationController.GetReputationHistory)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.POST("/:id/read", notificationController.MarkNotificationRead)
	}
}
