package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	insightsCtl := controllers.NewInsightsController(services.NewInsightsService(config.DB))
	alertCtl := controllers.NewAlertController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		journal := api.Group("/journal")
		{
			journal.GET("/entries", controllers.ListJournalEntries)
			journal.POST("/entries", controllers.CreateJournalEntry)
			journal.DELETE("/entries/:id", controllers.DeleteJournalEntry)
		}

		nutrition := api.Group("/nutrition")
		{
			nutrition.GET("/logs", controllers.ListNutritionLogs)
			nutrition.POST("/logs", controllers.CreateNutritionLog)
			nutrition.GET("/summary", controllers.GetNutritionSummary)
			nutrition.DELETE("/logs/:id", controllers.DeleteNutritionLog)
		}

		workouts := api.Group("/workouts")
		{
			workouts.GET("", controllers.ListWorkouts)
			workouts.POST("", controllers.CreateWorkout)
			workouts.GET("/:id", controllers.GetWorkout)
			workouts.DELETE("/:id", controllers.DeleteWorkout)
		}

		meditation := api.Group("/meditation")
		{
			meditation.GET("/sessions", controllers.ListMeditationSessions)
			meditation.POST("/sessions", controllers.CreateMeditationSession)
			meditation.GET("/stats", controllers.GetMeditationStats)
			meditation.DELETE("/sessions/:id", controllers.DeleteMeditationSession)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", controllers.ListActivities)
			activities.POST("", controllers.RecordActivity)
			activities.GET("/summary", controllers.GetActivitySummary)
			activities.DELETE("/:id", controllers.DeleteActivity)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", controllers.ListGoals)
			goals.POST("", controllers.CreateGoal)
			goals.PUT("/:id", controllers.UpdateGoal)
			goals.GET("/progress", controllers.GetGoalsProgress)
			goals.DELETE("/:id", controllers.DeleteGoal)
		}

		api.GET("/dashboard/overview", controllers.GetDashboardOverview)

		wellness := api.Group("/wellness")
		{
			wellness.GET("/programs", controllers.ListPrograms)
			wellness.GET("/programs/:id", controllers.GetProgram)
			wellness.GET("/enrollments", controllers.ListEnrollments)
			wellness.POST("/enrollments", controllers.Enroll)
			wellness.PUT("/enrollments/:id/progress", controllers.UpdateEnrollmentProgress)
			wellness.DELETE("/enrollments/:id", controllers.Unenroll)
		}

		insights := api.Group("/insights")
		{
			insights.GET("/trending", insightsCtl.GetTrending)
			insights.GET("/community", insightsCtl.GetCommunity)
			insights.GET("/stats", insightsCtl.GetStats)
		}

		renewal := api.Group("/renewal")
		{
			renewal.GET("/saved-items", controllers.ListSavedItems)
			renewal.POST("/saved-items", controllers.SaveItem)
			renewal.PUT("/saved-items/:id/pause", controllers.PauseSavedItem)
			renewal.DELETE("/saved-items/:id", controllers.DeleteSavedItem)
		}

		sleep := api.Group("/sleep")
		{
			sleep.GET("/tools", controllers.ListSleepTools)
			sleep.GET("/tools/:id", controllers.GetSleepTool)
		}

		api.GET("/themes", controllers.ListThemes)
		api.GET("/themes/current", controllers.GetCurrentTheme)

		api.GET("/preferences", controllers.GetPreferences)
		api.PUT("/preferences", controllers.UpdatePreferences)

		api.GET("/visuals/rhythms", controllers.ListVisualRhythms)

		api.GET("/alerts", alertCtl.ListAlerts)

		// Admin-gated content management
		admin := api.Group("")
		admin.Use(middlewares.AdminOnly())
		{
			admin.POST("/wellness/programs", controllers.CreateProgram)
			admin.PUT("/wellness/programs/:id", controllers.UpdateProgram)
			admin.DELETE("/wellness/programs/:id", controllers.DeleteProgram)

			admin.POST("/insights/analytics/record", insightsCtl.RecordAnalytics)

			admin.POST("/sleep/tools", controllers.CreateSleepTool)
			admin.PUT("/sleep/tools/:id", controllers.UpdateSleepTool)
			admin.DELETE("/sleep/tools/:id", controllers.DeleteSleepTool)

			admin.POST("/themes", controllers.CreateTheme)

			admin.POST("/visuals/rhythms", controllers.CreateVisualRhythm)
			admin.DELETE("/visuals/rhythms/:id", controllers.DeleteVisualRhythm)

			admin.GET("/admin/content", controllers.ListAdminContent)
			admin.POST("/admin/content", controllers.CreateAdminContent)
			admin.PUT("/admin/content/:id", controllers.UpdateAdminContent)
			admin.DELETE("/admin/content/:id", controllers.DeleteAdminContent)

			admin.GET("/admin/subscriptions", controllers.ListSubscriptions)
			admin.PUT("/admin/subscriptions/:id", controllers.UpdateSubscription)
		}
	}

	// Realtime alert stream
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", alertCtl.AlertsWS)
	}

	return r
}
