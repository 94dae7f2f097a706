package routes

import (
	"part-contest-api/controllers"
	"part-contest-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Competition clock and weekly standings
			public.GET("/week", controllers.GetCurrentWeek)
			public.GET("/winners", controllers.GetWinners)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Part Contest API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", controllers.CreateSubmission)
				submissions.GET("/status", controllers.GetSubmissionStatus)
				submissions.GET("/file/:public_id", controllers.DownloadSubmission)
			}

			// Voting
			votes := protected.Group("/votes")
			{
				votes.GET("/batch", controllers.GetVotingBatch)
				votes.POST("", controllers.CastVote)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.POST("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Admin (role re-checked against the store per request)
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/submissions", controllers.GetAdminSubmissions)
				admin.POST("/submissions/:id/winner", controllers.SelectWinner)
			}
		}
	}
}
