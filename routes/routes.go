package routes

import (
	"org-portal-api/controllers"
	"org-portal-api/middleware"
	"org-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Student Organization Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)

			// Events: readable by everyone, mutated only by the Office of
			// Student Life (the organization empowered to create events).
			events := protected.Group("/events")
			{
				events.GET("", controllers.GetEvents)
				events.POST("", middleware.RequireOrganization(models.OrgStudentLife), controllers.CreateEvent)
				events.PUT("/:id", middleware.RequireOrganization(models.OrgStudentLife), controllers.UpdateEvent)
				events.DELETE("/:id", middleware.RequireOrganization(models.OrgStudentLife), controllers.DeleteEvent)
			}

			// Deadlines: derived per viewer; reminder action for oversight orgs.
			deadlines := protected.Group("/deadlines")
			{
				deadlines.GET("", controllers.GetDeadlines)
				deadlines.POST("/:event_id/remind", controllers.SendDeadlineReminder)
			}

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/inbox", controllers.GetSubmissionInbox)
				submissions.GET("/pending-request", controllers.HasPendingActivityRequest)
				submissions.POST("/report", controllers.SubmitReport)
				submissions.POST("/activity-request", controllers.SubmitActivityRequest)
				submissions.POST("/appeal", controllers.SubmitAppeal)
				submissions.PUT("/:id/status", controllers.UpdateSubmissionStatus)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.POST("/:id/read", controllers.MarkNotificationRead)
				notifications.DELETE("", controllers.DeleteAllNotifications)
				notifications.POST("/broadcast", middleware.RequireOrganization(models.OrgStudentLife), controllers.BroadcastNotification)
			}

			// Accounts
			accounts := protected.Group("/accounts")
			{
				accounts.GET("/status", controllers.GetAccountStatus)
				accounts.PUT("/:org/status", middleware.RequireOrganization(models.OrgStudentLife), controllers.UpdateAccountStatus)
			}

			// Stored files (uploaded letters and reports)
			files := protected.Group("/files")
			files.Use(middleware.RequireOrganization(models.OrgStudentLife))
			{
				files.GET("", controllers.ListFiles)
				files.DELETE("", controllers.DeleteFile)
			}
		}
	}
}
