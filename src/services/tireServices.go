package services

import (
	"errors"
	"fmt"

	"github.com/PitStop/PitStop-Backend/src/models"
	"gorm.io/gorm"
)

type TireService struct {
	db *gorm.DB
}

// NewTireService creates a new instance of TireService
func NewTireService(db *gorm.DB) *TireService {
	return &TireService{db: db}
}

// GetAllTires retrieves all tire records, optionally narrowed to one car
func (s *TireService) GetAllTires(carId *int) ([]models.TireModel, error) {
	var tires []models.TireModel

	query := s.db.Preload("Car")
	if carId != nil {
		query = query.Where("car_id = ?", *carId)
	}

	result := query.Order("id").Find(&tires)
	if result.Error != nil {
		return nil, result.Error
	}
	return tires, nil
}

func (s *TireService) GetTireByID(id int) (*models.TireModel, error) {
	var tire models.TireModel
	err := s.db.Preload("Car").First(&tire, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tire, nil
}

// CreateTire creates a new tire record in the database
func (s *TireService) CreateTire(tire *models.TireModel) (*models.TireModel, error) {
	if err := s.validateTire(tire); err != nil {
		return nil, err
	}
	result := s.db.Create(tire)
	if result.Error != nil {
		return nil, result.Error
	}
	return tire, nil
}

// UpdateTire replaces the stored field values of an existing tire
func (s *TireService) UpdateTire(id int, updatedData *models.TireModel) (*models.TireModel, error) {
	var tire models.TireModel
	if err := s.db.First(&tire, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validateTire(updatedData); err != nil {
		return nil, err
	}

	if err := s.db.Model(&tire).Updates(map[string]interface{}{
		"car_id":       updatedData.CarId,
		"kind":         updatedData.Kind,
		"season":       updatedData.Season,
		"manufacturer": updatedData.Manufacturer,
		"model":        updatedData.Model,
		"size":         updatedData.Size,
		"load_index":   updatedData.LoadIndex,
		"wear_percent": updatedData.WearPercent,
		"pressure":     updatedData.Pressure,
	}).Error; err != nil {
		return nil, err
	}

	return &tire, nil
}

// DeleteTire deletes a tire record from the database
func (s *TireService) DeleteTire(id int) error {
	result := s.db.Delete(&models.TireModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TireService) validateTire(tire *models.TireModel) error {
	if tire.CarId <= 0 {
		return invalid("carId", "is required")
	}
	if len(tire.Kind) > 50 {
		return invalid("kind", "must be at most 50 characters")
	}
	if len(tire.Season) > 50 {
		return invalid("season", "must be at most 50 characters")
	}
	if len(tire.Manufacturer) > 100 {
		return invalid("manufacturer", "must be at most 100 characters")
	}
	if len(tire.Model) > 100 {
		return invalid("model", "must be at most 100 characters")
	}
	if len(tire.Size) > 50 {
		return invalid("size", "must be at most 50 characters")
	}
	if tire.WearPercent < 0 || tire.WearPercent > 100 {
		return invalid("wearPercent", "must be between 0 and 100")
	}
	if tire.Pressure < 0 || tire.Pressure > 10 {
		return invalid("pressure", "must be between 0 and 10")
	}

	var count int64
	if err := s.db.Model(&models.CarModel{}).Where("id = ?", tire.CarId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("car %d: %w", tire.CarId, ErrNotFound)
	}

	return nil
}
