package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/models"
	"gorm.io/gorm"
)

type CompletedWorkService struct {
	db *gorm.DB
}

// NewCompletedWorkService creates a new instance of CompletedWorkService
func NewCompletedWorkService(db *gorm.DB) *CompletedWorkService {
	return &CompletedWorkService{db: db}
}

// GetAllCompletedWorks retrieves completed work rows, optionally narrowed to
// one order number.
func (s *CompletedWorkService) GetAllCompletedWorks(orderNumber *string) ([]models.CompletedWorkModel, error) {
	var works []models.CompletedWorkModel

	query := s.db.Preload("Service").Preload("Master")
	if orderNumber != nil {
		query = query.Where("order_number = ?", *orderNumber)
	}

	result := query.Order("id").Find(&works)
	if result.Error != nil {
		return nil, result.Error
	}
	return works, nil
}

func (s *CompletedWorkService) GetCompletedWorkByID(id int) (*models.CompletedWorkModel, error) {
	var work models.CompletedWorkModel
	err := s.db.Preload("Service").Preload("Master").Preload("Order").First(&work, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// CreateCompletedWork records one rendered service against an order. All three
// referenced parents must already exist. Creating the first row for an order
// is what flips that order to completed.
func (s *CompletedWorkService) CreateCompletedWork(work *models.CompletedWorkModel) (*models.CompletedWorkModel, error) {
	work.OrderNumber = strings.TrimSpace(work.OrderNumber)
	if work.OrderNumber == "" {
		return nil, invalid("orderNumber", "is required")
	}
	if work.ServiceCode <= 0 {
		return nil, invalid("serviceCode", "is required")
	}
	if work.MasterId <= 0 {
		return nil, invalid("masterId", "is required")
	}

	var count int64
	if err := s.db.Model(&models.OrderModel{}).Where("number = ?", work.OrderNumber).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("order %s: %w", work.OrderNumber, ErrNotFound)
	}
	if err := s.db.Model(&models.ServiceModel{}).Where("code = ?", work.ServiceCode).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("service %d: %w", work.ServiceCode, ErrNotFound)
	}
	if err := s.db.Model(&models.MasterModel{}).Where("id = ?", work.MasterId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("master %d: %w", work.MasterId, ErrNotFound)
	}

	result := s.db.Create(work)
	if result.Error != nil {
		return nil, result.Error
	}
	return work, nil
}

// DeleteCompletedWork removes one completed work row. Deleting the last row
// of an order flips that order back to active.
func (s *CompletedWorkService) DeleteCompletedWork(id int) error {
	result := s.db.Delete(&models.CompletedWorkModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
