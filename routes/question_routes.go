package routes

import (
	"github.com/ask-stack/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupQuestionRoutes(protected *gin.RouterGroup, questionController *controllers.QuestionController, answerController *controllers.AnswerController, bountyController *controllers.BountyController) {
	questions := protected.Group("/questions")
	{
		questions.POST("", questionController.CreateQuestion)
		questions.GET("", questionController.ListQuestions)
		questions.GET("/:id", questionController.GetQuestion)
		questions.PUT("/:id", questionController.UpdateQuestion)
		questions.POST("/:id/bookmark", questionController.BookmarkQuestion)
		questions.POST("/:id/follow", questionController.FollowQuestion)

		questions.POST("/:id/answers", answerController.CreateAnswer)
		questions.GET("/:id/answers", answerController.ListAnswers)
		questions.POST("/:id/accept-answer", answerController.AcceptAnswer)
		questions.DELETE("/:id/accept-answer", answerController.UnacceptAnswer)

		questions.POST("/:id/bounty", bountyController.OfferBounty)
		questions.POST("/:id/bounty/award", bountyController.AwardBounty)
	}
}
