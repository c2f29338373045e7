package routes

import (
	"github.com/lucas-hsi/melitusgym-sub000/controllers"
	"github.com/lucas-hsi/melitusgym-sub000/middlewares"
	"github.com/lucas-hsi/melitusgym-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	alarmCtrl := controllers.NewAlarmController(services.NewAlarmService(push))
	deviceCtrl := controllers.NewDeviceController(push)
	realtimeCtrl := controllers.NewRealtimeController(rt)

	r.GET("/health", controllers.HealthCheck)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/foods/search", controllers.SearchFoods)
		nutrition.POST("/foods/recognize", controllers.RecognizeFood)
		nutrition.GET("/foods/portion", controllers.PortionPreview)

		nutrition.POST("/dose/preview", controllers.DosePreview)

		nutrition.POST("/meals", controllers.CreateMealLog)
		nutrition.GET("/meals", controllers.ListMealLogs)
		nutrition.GET("/meals/:id", controllers.GetMealLog)
		nutrition.PUT("/meals/:id", controllers.UpdateMealLog)
		nutrition.DELETE("/meals/:id", controllers.DeleteMealLog)
		nutrition.POST("/meals/photo", controllers.UploadMealPhoto)
	}

	clinical := r.Group("/clinical")
	clinical.Use(middlewares.AuthMiddleware())
	{
		clinical.POST("/logs", controllers.CreateClinicalLog)
		clinical.GET("/logs", controllers.ListClinicalLogs)
		clinical.GET("/stats", controllers.ClinicalStats)
	}

	alarms := r.Group("/alarms")
	alarms.Use(middlewares.AuthMiddleware())
	{
		alarms.POST("", alarmCtrl.Create)
		alarms.GET("", alarmCtrl.List)
		alarms.PUT("/:id", alarmCtrl.Update)
		alarms.DELETE("/:id", alarmCtrl.Delete)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", deviceCtrl.Register)
	}

	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/daily", controllers.DailySummary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtrl.AlertsWS)
	}

	return r
}
