package routes

import (
	"fitnessforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterInsightRoutes(router *gin.RouterGroup, insightController *controllers.InsightController, authMw gin.HandlerFunc) {
	insightRoutes := router.Group("/metrics")
	insightRoutes.Use(authMw)
	{
		insightRoutes.POST("/bmi", insightController.RecordBMI)
		insightRoutes.GET("/summary", insightController.Summary)
		insightRoutes.GET("/weight-chart", insightController.WeightChart)
	}
}
