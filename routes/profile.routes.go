package routes

import (
	"fitnessforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(router *gin.RouterGroup, profileController *controllers.ProfileController, authMw gin.HandlerFunc) {
	profileRoutes := router.Group("/profiles")
	profileRoutes.Use(authMw)
	{
		profileRoutes.POST("/create", profileController.CreateOrUpdate)
		profileRoutes.PUT("/update-weight", profileController.UpdateWeight)
		profileRoutes.GET("/:userId", profileController.GetProfile)
	}
}
