package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCompletedWorkRoutes(router *gin.Engine, service *services.CompletedWorkService) {
	workController := controllers.NewCompletedWorkController(service)

	// Protected routes
	work := router.Group("/completed-works")
	work.Use(middleware.AuthMiddleware())
	{
		work.GET("", workController.GetCompletedWorks)
		work.GET("/:id", workController.GetCompletedWorkByID)
		work.POST("", workController.CreateCompletedWork)
		work.DELETE("/:id", workController.DeleteCompletedWork)
	}
}
