package routes

import (
	"fitnessforge/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, authMw, registerLimit, loginLimit gin.HandlerFunc) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/register", registerLimit, userController.Register)
		userRoutesPublic.POST("/login", loginLimit, userController.Login)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(authMw)
	{
		userRoutesPrivate.GET("/current", userController.Current)
	}
}
