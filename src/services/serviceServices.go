package services

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportResult summarizes one price list import: how many rows landed and
// what went wrong with the rest.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

type ServiceService struct {
	db *gorm.DB
}

// NewServiceService creates a new instance of ServiceService
func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{db: db}
}

// GetAllServices retrieves the whole price list ordered by code
func (s *ServiceService) GetAllServices() ([]models.ServiceModel, error) {
	var services []models.ServiceModel
	result := s.db.Order("code").Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}
	return services, nil
}

func (s *ServiceService) GetServiceByCode(code int) (*models.ServiceModel, error) {
	var service models.ServiceModel
	err := s.db.First(&service, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateService adds a new price list entry
func (s *ServiceService) CreateService(service *models.ServiceModel) (*models.ServiceModel, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.ServiceModel{}).Where("code = ?", service.Code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, invalid("code", "already in use")
	}

	result := s.db.Create(service)
	if result.Error != nil {
		return nil, result.Error
	}
	return service, nil
}

// UpdateService replaces the name and cost of an existing entry. The code is
// the identity of the entry and cannot change.
func (s *ServiceService) UpdateService(code int, updatedData *models.ServiceModel) (*models.ServiceModel, error) {
	var service models.ServiceModel
	if err := s.db.First(&service, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updatedData.Code = code
	if err := validateService(updatedData); err != nil {
		return nil, err
	}

	if err := s.db.Model(&service).Updates(map[string]interface{}{
		"name": strings.TrimSpace(updatedData.Name),
		"cost": updatedData.Cost,
	}).Error; err != nil {
		return nil, err
	}

	return &service, nil
}

// DeleteService removes a price list entry unless completed work still
// references it.
func (s *ServiceService) DeleteService(code int) error {
	var refs int64
	if err := s.db.Model(&models.CompletedWorkModel{}).Where("service_code = ?", code).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrRestricted
	}

	result := s.db.Delete(&models.ServiceModel{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ImportFromExcel reads a price list workbook and upserts every row into the
// catalog. Expected columns: code, name, cost. Rows that cannot be parsed are
// collected as errors without stopping the rest of the import.
func (s *ServiceService) ImportFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			// A non-numeric first cell on the first row is just the header.
			if i == 0 {
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid code %q", i+1, row[0]))
			continue
		}

		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}

		cost := 0.0
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			raw := strings.ReplaceAll(strings.TrimSpace(row[2]), ",", ".")
			cost, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid cost %q", i+1, row[2]))
				continue
			}
		}

		service := models.ServiceModel{Code: code, Name: name, Cost: cost}
		if err := validateService(&service); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		var existing models.ServiceModel
		err = s.db.First(&existing, "code = ?", code).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.db.Create(&service).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				continue
			}
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		default:
			if err := s.db.Model(&existing).Updates(map[string]interface{}{
				"name": name,
				"cost": cost,
			}).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				continue
			}
		}

		result.Imported++
	}

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("no rows could be imported")
	}

	return result, nil
}

func validateService(service *models.ServiceModel) error {
	if service.Code <= 0 {
		return invalid("code", "must be a positive number")
	}
	if strings.TrimSpace(service.Name) == "" {
		return invalid("name", "is required")
	}
	if len(service.Name) > 150 {
		return invalid("name", "must be at most 150 characters")
	}
	if service.Cost < 0 || service.Cost > 1000000 {
		return invalid("cost", "must be between 0 and 1000000")
	}
	return nil
}
