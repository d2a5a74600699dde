package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(router *gin.Engine, service *services.DashboardService) {
	dashboardController := controllers.NewDashboardController(service)

	// Protected routes
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/stats", dashboardController.GetStats)
		dashboard.GET("/top-clients", dashboardController.GetTopClients)
		dashboard.GET("/recent-orders", dashboardController.GetRecentOrders)
	}
}
