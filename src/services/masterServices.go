package services

import (
	"errors"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/models"
	"gorm.io/gorm"
)

type MasterService struct {
	db *gorm.DB
}

// NewMasterService creates a new instance of MasterService
func NewMasterService(db *gorm.DB) *MasterService {
	return &MasterService{db: db}
}

// GetAllMasters retrieves all master records from the database
func (s *MasterService) GetAllMasters() ([]models.MasterModel, error) {
	var masters []models.MasterModel
	result := s.db.Order("id").Find(&masters)
	if result.Error != nil {
		return nil, result.Error
	}
	return masters, nil
}

func (s *MasterService) GetMasterByID(id int) (*models.MasterModel, error) {
	var master models.MasterModel
	err := s.db.First(&master, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &master, nil
}

// CreateMaster creates a new master record in the database
func (s *MasterService) CreateMaster(master *models.MasterModel) (*models.MasterModel, error) {
	if err := validateMaster(master); err != nil {
		return nil, err
	}
	master.FirstName = strings.TrimSpace(master.FirstName)
	master.LastName = strings.TrimSpace(master.LastName)

	result := s.db.Create(master)
	if result.Error != nil {
		return nil, result.Error
	}
	return master, nil
}

// UpdateMaster replaces the stored field values of an existing master
func (s *MasterService) UpdateMaster(id int, updatedData *models.MasterModel) (*models.MasterModel, error) {
	var master models.MasterModel
	if err := s.db.First(&master, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := validateMaster(updatedData); err != nil {
		return nil, err
	}

	if err := s.db.Model(&master).Updates(map[string]interface{}{
		"first_name": strings.TrimSpace(updatedData.FirstName),
		"last_name":  strings.TrimSpace(updatedData.LastName),
		"phone":      strings.TrimSpace(updatedData.Phone),
		"specialty":  strings.TrimSpace(updatedData.Specialty),
	}).Error; err != nil {
		return nil, err
	}

	return &master, nil
}

// DeleteMaster removes a master unless completed work still references them.
// Open order assignments are cleared, not deleted.
func (s *MasterService) DeleteMaster(id int) error {
	var master models.MasterModel
	if err := s.db.First(&master, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var refs int64
	if err := s.db.Model(&models.CompletedWorkModel{}).Where("master_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrRestricted
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderModel{}).
			Where("master_id = ?", id).
			Update("master_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MasterModel{}, id).Error
	})
}

func validateMaster(master *models.MasterModel) error {
	if strings.TrimSpace(master.FirstName) == "" {
		return invalid("firstName", "is required")
	}
	if len(master.FirstName) > 100 {
		return invalid("firstName", "must be at most 100 characters")
	}
	if strings.TrimSpace(master.LastName) == "" {
		return invalid("lastName", "is required")
	}
	if len(master.LastName) > 100 {
		return invalid("lastName", "must be at most 100 characters")
	}
	if len(master.Phone) > 30 {
		return invalid("phone", "must be at most 30 characters")
	}
	if len(master.Specialty) > 100 {
		return invalid("specialty", "must be at most 100 characters")
	}
	return nil
}
