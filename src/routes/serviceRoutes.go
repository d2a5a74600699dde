package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupServiceRoutes(router *gin.Engine, service *services.ServiceService) {
	controller := controllers.NewServiceController(service)

	// Protected routes
	serviceGroup := router.Group("/services")
	serviceGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		serviceGroup.GET("", controller.GetServices)
		serviceGroup.GET("/:code", controller.GetServiceByCode)
		serviceGroup.POST("", controller.CreateService)
		serviceGroup.PUT("/:code", controller.UpdateService)
		serviceGroup.DELETE("/:code", controller.DeleteService)

		// Price list upload
		serviceGroup.POST("/import", controller.ImportServices)
	}
}
