package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(router *gin.Engine, service *services.OrderService) {
	controller := controllers.NewOrderController(service)

	// Protected routes
	orderGroup := router.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		orderGroup.GET("", controller.GetAllOrders)
		orderGroup.GET("/:id", controller.GetOrderByID)
		orderGroup.POST("", controller.CreateOrder)
		orderGroup.PUT("/:id", controller.UpdateOrder)
		orderGroup.DELETE("/:id", controller.DeleteOrder)

		// Export
		orderGroup.GET("/export", controller.ExportOrders)
	}
}
