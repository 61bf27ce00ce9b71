package routes

import (
	"fitnessforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLogRoutes(router *gin.RouterGroup, logController *controllers.LogController, authMw gin.HandlerFunc) {
	logRoutes := router.Group("/logs")
	logRoutes.Use(authMw)
	{
		logRoutes.POST("/create", logController.Create)
		logRoutes.GET("/user/:userId/bmi", logController.LatestBMI)
		logRoutes.GET("/user/:userId/weight", logController.WeightHistory)
	}
}
