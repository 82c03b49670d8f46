package routes

import (
	"github.com/ask-stack/api-go/config"
	"github.com/ask-stack/api-go/controllers"
	"github.com/ask-stack/api-go/middleware"
	"github.com/ask-stack/api-go/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	rules := services.LoadRules()
	assistant := config.NewAssistantConfig()

	// Engines
	reputationService := services.NewReputationService(db)
	voteService := services.NewVoteService(db, rules)
	bountyService := services.NewBountyService(db, reputationService, rules)
	acceptService := services.NewAcceptService(db)
	lifecycleService := services.NewLifecycleService(db, rules)
	eli5Service := services.NewEli5Service(db, services.NewOpenAISummarizer(assistant.Client, assistant.Model))

	// Controllers
	authController := controllers.NewAuthController(db, reputationService)
	questionController := controllers.NewQuestionController(db, voteService)
	answerController := controllers.NewAnswerController(db, acceptService, eli5Service, voteService)
	voteController := controllers.NewVoteController(voteService)
	bountyController := controllers.NewBountyController(bountyService)
	lifecycleController := controllers.NewLifecycleController(db, lifecycleService)
	reputationController := controllers.NewReputationController(reputationService)
	flagController := controllers.NewFlagController(db)
	adminController := controllers.NewAdminController(db, reputationService)
	commentController := controllers.NewCommentController(db)
	notificationController := controllers.NewNotificationController(db)
	uploadController := controllers.NewUploadController()

	r.Use(middleware.RequestID())

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-login", authController.GoogleLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupQuestionRoutes(protected, questionController, answerController, bountyController)
		SetupItemRoutes(protected, voteController, lifecycleController, commentController)
		SetupUserRoutes(protected, reputationController, notificationController)
		SetupUploadRoutes(protected, uploadController)

		protected.POST("/flags", flagController.CreateFlag)
		protected.PUT("/answers/:id", answerController.UpdateAnswer)
		protected.POST("/answers/:id/eli5", answerController.ExplainAnswer)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		SetupAdminRoutes(admin, flagController, adminController)
	}
}
