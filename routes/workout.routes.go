package routes

import (
	"fitnessforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.RouterGroup, workoutController *controllers.WorkoutController, authMw gin.HandlerFunc) {
	workoutRoutes := router.Group("/workouts")
	workoutRoutes.Use(authMw)
	{
		workoutRoutes.POST("", workoutController.Create)
		// static segments win over :userId in gin's tree
		workoutRoutes.GET("/calendar", workoutController.Calendar)
		workoutRoutes.GET("/breakdown", workoutController.Breakdown)
		workoutRoutes.GET("/:userId", workoutController.GetByUser)
	}
}
