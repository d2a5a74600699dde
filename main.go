package main

import (
	"os"

	"github.com/PitStop/PitStop-Backend/src/db"
	"github.com/PitStop/PitStop-Backend/src/logger"
	"github.com/PitStop/PitStop-Backend/src/middleware"
	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/photostore"
	"github.com/PitStop/PitStop-Backend/src/routes"
	"github.com/PitStop/PitStop-Backend/src/seed"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	log := logger.FromEnv()
	defer log.Sync()

	// Database connection
	database, err := db.Connect()
	if err != nil {
		log.Fatal("Error connecting to database", zap.Error(err))
	}

	// Auto-migrate models, parents before the tables referencing them
	if err := database.AutoMigrate(
		&models.ClientModel{},
		&models.CarModel{},
		&models.TireModel{},
		&models.MasterModel{},
		&models.ServiceModel{},
		&models.OrderModel{},
		&models.CompletedWorkModel{},
		&models.UserModel{},
	); err != nil {
		log.Fatal("Error during auto-migration", zap.Error(err))
	}

	// JWT secret setup
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pitstop-dev-secret"
		log.Warn("JWT_SECRET not set, using the development default")
	}
	middleware.SetSecretKey(secret)

	// Base data
	seed.Seed(database, log)

	// Photo storage setup
	uploadsRoot := os.Getenv("UPLOADS_DIR")
	if uploadsRoot == "" {
		uploadsRoot = "uploads"
	}
	store, err := photostore.NewDiskStore(uploadsRoot)
	if err != nil {
		log.Fatal("Error preparing photo storage", zap.Error(err))
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	carService := services.NewCarService(database, store, log)
	clientService := services.NewClientService(database, carService)
	tireService := services.NewTireService(database)
	orderService := services.NewOrderService(database)
	serviceService := services.NewServiceService(database)
	masterService := services.NewMasterService(database)
	completedWorkService := services.NewCompletedWorkService(database)
	dashboardService := services.NewDashboardService(database, orderService)
	userService := services.NewUserService(database)

	// Routes setup
	routes.SetupClientRoutes(router, clientService)
	routes.SetupCarRoutes(router, carService, store)
	routes.SetupTireRoutes(router, tireService)
	routes.SetupOrderRoutes(router, orderService)
	routes.SetupServiceRoutes(router, serviceService)
	routes.SetupMasterRoutes(router, masterService)
	routes.SetupCompletedWorkRoutes(router, completedWorkService)
	routes.SetupDashboardRoutes(router, dashboardService)
	routes.SetupUserRoutes(router, userService)

	// Stored photos stay reachable directly, e.g. /uploads/photos/<file>
	router.Static("/uploads", store.Root())

	router.GET("/", func(c *gin.Context) {
		c.String(200, "PitStop backend is running")
	})

	// Server run
	log.Info("Server starting", zap.String("addr", host))
	if err := router.Run(host); err != nil {
		log.Fatal("Error starting server", zap.String("addr", host), zap.Error(err))
	}

}
