package seed

import (
	"os"

	"github.com/PitStop/PitStop-Backend/src/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes sure the admin login and the base price list exist. Everything
// here is find-or-create, so running it on every boot is safe.
func Seed(db *gorm.DB, logger *zap.Logger) {
	seedAdminUser(db, logger)
	seedPriceList(db, logger)
}

func seedAdminUser(db *gorm.DB, logger *zap.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	var user models.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err == nil {
		logger.Info("Admin user already exists", zap.String("username", username))
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "pitstop"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash admin password", zap.Error(err))
		return
	}

	newUser := models.UserModel{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := db.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create admin user", zap.Error(err))
		return
	}
	logger.Info("Admin user created", zap.String("username", username))
}

func seedPriceList(db *gorm.DB, logger *zap.Logger) {
	baseServices := []models.ServiceModel{
		{Code: 100, Name: "Tire change (per wheel)", Cost: 15},
		{Code: 101, Name: "Wheel balancing (per wheel)", Cost: 10},
		{Code: 102, Name: "Flat tire repair", Cost: 20},
		{Code: 110, Name: "Seasonal tire swap (full set)", Cost: 45},
		{Code: 120, Name: "Tire storage (per season)", Cost: 30},
		{Code: 130, Name: "Valve replacement", Cost: 5},
		{Code: 140, Name: "Wheel alignment", Cost: 60},
	}

	created := 0
	for _, service := range baseServices {
		var existing models.ServiceModel
		if err := db.Where("code = ?", service.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&service).Error; err != nil {
			logger.Error("Failed to seed service", zap.Int("code", service.Code), zap.Error(err))
			continue
		}
		created++
	}

	if created > 0 {
		logger.Info("Seeded base price list", zap.Int("created", created))
	} else {
		logger.Info("Base price list already present")
	}
}
