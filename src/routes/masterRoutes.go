package routes

import (
	"github.com/PitStop/PitStop-Backend/src/controllers"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupMasterRoutes(router *gin.Engine, service *services.MasterService) {
	masterController := controllers.NewMasterController(service)

	// Protected routes
	master := router.Group("/masters")
	master.Use(middleware.AuthMiddleware())
	{
		master.GET("", masterController.GetMasters)
		master.GET("/:id", masterController.GetMasterByID)
		master.POST("", masterController.CreateMaster)
		master.PUT("/:id", masterController.UpdateMaster)
		master.DELETE("/:id", masterController.DeleteMaster)
	}
}
