package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupTireRoutes(router *gin.Engine, service *services.TireService) {
	tireController := controllers.NewTireController(service)

	// Protected routes
	tire := router.Group("/tires")
	tire.Use(middleware.AuthMiddleware())
	{
		tire.GET("", tireController.GetTires)
		tire.GET("/:id", tireController.GetTireByID)
		tire.POST("", tireController.CreateTire)
		tire.PUT("/:id", tireController.UpdateTire)
		tire.DELETE("/:id", tireController.DeleteTire)
	}
}
