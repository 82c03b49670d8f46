package routes

import (
	"github.com/ask-stack/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(admin *gin.RouterGroup, flagController *controllers.FlagController, adminController *controllers.AdminController) {
	admin.GET("/flags", flagController.ListFlags)
	admin.PUT("/flags/:id", flagController.ResolveFlag)

	admin.POST("/users/:id/ban", adminController.BanUser)
	admin.POST("/users/:id/unban", adminController.UnbanUser)
	admin.POST("/users/:id/reputation", adminController.AdjustReputation)
}
