package routes

import (
	"github.com/ask-stack/api-go/controllers"
	"github.com/gin-gonic/gin"
)

// Item routes address questions and answers uniformly by {type}/{id}.
func SetupItemRoutes(protected *gin.RouterGroup, voteController *controllers.VoteController, lifecycleController *controllers.LifecycleController, commentController *controllers.CommentController) {
	items := protected.Group("/items")
	{
		items.POST("/:type/:id/vote", voteController.VoteItem)
		items.GET("/:type/:id/votes", voteController.GetVotes)

		items.POST("/:type/:id/soft-delete", lifecycleController.SoftDeleteItem)
		items.POST("/:type/:id/restore", lifecycleController.RestoreItem)

		items.POST("/:type/:id/comments", commentController.CreateComment)
		items.GET("/:type/:id/comments", commentController.ListComments)
	}
}
