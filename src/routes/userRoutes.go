package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", userController.GetAllUsers)
		user.POST("", userController.CreateUser)
		user.DELETE("/:id", userController.DeleteUser)
	}
}
