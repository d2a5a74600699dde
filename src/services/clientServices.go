package services

import (
	"errors"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/models"
	"gorm.io/gorm"
)

type ClientService struct {
	db   *gorm.DB
	cars *CarService
}

// NewClientService creates a new instance of ClientService
func NewClientService(db *gorm.DB, cars *CarService) *ClientService {
	return &ClientService{db: db, cars: cars}
}

// GetAllClients retrieves all client records together with their cars
func (s *ClientService) GetAllClients() ([]models.ClientModel, error) {
	var clients []models.ClientModel
	result := s.db.Preload("Cars").Order("id").Find(&clients)
	if result.Error != nil {
		return nil, result.Error
	}
	return clients, nil
}

func (s *ClientService) GetClientByID(id int) (*models.ClientModel, error) {
	var client models.ClientModel
	err := s.db.Preload("Cars").First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateClient creates a new client record in the database
func (s *ClientService) CreateClient(client *models.ClientModel) (*models.ClientModel, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}
	client.FirstName = strings.TrimSpace(client.FirstName)
	client.LastName = strings.TrimSpace(client.LastName)
	client.Phone = strings.TrimSpace(client.Phone)

	result := s.db.Create(client)
	if result.Error != nil {
		return nil, result.Error
	}
	return client, nil
}

// UpdateClient replaces the stored field values of an existing client
func (s *ClientService) UpdateClient(id int, updatedData *models.ClientModel) (*models.ClientModel, error) {
	var client models.ClientModel
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := validateClient(updatedData); err != nil {
		return nil, err
	}

	if err := s.db.Model(&client).Updates(map[string]interface{}{
		"first_name": strings.TrimSpace(updatedData.FirstName),
		"last_name":  strings.TrimSpace(updatedData.LastName),
		"phone":      strings.TrimSpace(updatedData.Phone),
	}).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// DeleteClient removes the client and every car they own. Going through the
// car lifecycle keeps the photo files, tires, orders and completed work of
// each car cleaned up as well.
func (s *ClientService) DeleteClient(id int) error {
	var client models.ClientModel
	if err := s.db.Preload("Cars").First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, car := range client.Cars {
		if err := s.cars.DeleteCar(car.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}

	return s.db.Delete(&models.ClientModel{}, id).Error
}

func validateClient(client *models.ClientModel) error {
	if strings.TrimSpace(client.FirstName) == "" {
		return invalid("firstName", "is required")
	}
	if len(client.FirstName) > 100 {
		return invalid("firstName", "must be at most 100 characters")
	}
	if strings.TrimSpace(client.LastName) == "" {
		return invalid("lastName", "is required")
	}
	if len(client.LastName) > 100 {
		return invalid("lastName", "must be at most 100 characters")
	}
	if len(client.Phone) > 30 {
		return invalid("phone", "must be at most 30 characters")
	}
	return nil
}
