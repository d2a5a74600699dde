package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/photostore"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCarRoutes(router *gin.Engine, service *services.CarService, store *photostore.DiskStore) {
	controller := controllers.NewCarController(service, store)

	// Protected routes
	carGroup := router.Group("/cars")
	carGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		carGroup.GET("", controller.GetAllCars)
		carGroup.GET("/:id", controller.GetCarByID)
		carGroup.POST("", controller.CreateCar)
		carGroup.PUT("/:id", controller.UpdateCar)
		carGroup.DELETE("/:id", controller.DeleteCar)
	}

	// Photos are served without auth so plain <img> tags can load them
	router.GET("/cars/:id/photo", controller.ServePhoto)
}
