package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupClientRoutes(router *gin.Engine, service *services.ClientService) {
	clientController := controllers.NewClientController(service)

	// Protected routes
	client := router.Group("/clients")
	client.Use(middleware.AuthMiddleware())
	{
		client.GET("", clientController.GetClients)
		client.GET("/:id", clientController.GetClientByID)
		client.POST("", clientController.CreateClient)
		client.PUT("/:id", clientController.UpdateClient)
		client.DELETE("/:id", clientController.DeleteClient)
	}
}
