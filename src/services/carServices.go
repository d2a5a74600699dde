package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/dtos"
	"github.com/PitStop/PitStop-Backend/src/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PhotoStore is the slice of the storage adapter the car lifecycle needs.
// *photostore.DiskStore satisfies it.
type PhotoStore interface {
	Save(content io.Reader, originalFilename string) (string, error)
	Remove(relPath string) error
}

// PhotoUpload is one uploaded photo handed over by the transport layer.
// Zero-size uploads are skipped during reconciliation.
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type CarService struct {
	db     *gorm.DB
	store  PhotoStore
	logger *zap.Logger
}

func NewCarService(db *gorm.DB, store PhotoStore, logger *zap.Logger) *CarService {
	return &CarService{db: db, store: store, logger: logger}
}

// ======================= CARS =======================

func (s *CarService) GetAllCars(clientId *int) ([]models.CarModel, error) {
	var cars []models.CarModel

	query := s.db.Preload("Client").Preload("Tires")
	if clientId != nil {
		query = query.Where("client_id = ?", *clientId)
	}

	err := query.Order("id").Find(&cars).Error
	return cars, err
}

func (s *CarService) GetCarByID(id int) (*models.CarModel, error) {
	var car models.CarModel

	err := s.db.Preload("Client").Preload("Tires").First(&car, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &car, nil
}

func (s *CarService) CreateCar(form *dtos.CarForm, uploads []PhotoUpload) (*models.CarModel, error) {
	if err := s.validateCarForm(form); err != nil {
		return nil, err
	}

	sequence, err := s.applyPhotoChanges(nil, nil, uploads)
	if err != nil {
		return nil, err
	}

	car := &models.CarModel{
		ClientId:    form.ClientId,
		Make:        strings.TrimSpace(form.Make),
		Model:       strings.TrimSpace(form.Model),
		Year:        form.Year,
		Plate:       strings.TrimSpace(form.Plate),
		VIN:         strings.TrimSpace(form.VIN),
		Photo:       firstPath(sequence),
		ExtraPhotos: models.EncodePhotoList(restPaths(sequence)),
		Version:     1,
	}

	if err := s.db.Create(car).Error; err != nil {
		// The insert failed after the files were written, so take them back out.
		for _, path := range sequence {
			if rmErr := s.store.Remove(path); rmErr != nil {
				s.logger.Warn("Failed to clean up photo after aborted create",
					zap.String("path", path), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	return car, nil
}

// UpdateCar reconciles the stored photo set with the caller's removals and
// uploads, then persists the new field values in a single guarded write. A
// non-zero form.Version that does not match the stored row fails with
// ErrStaleWrite before any file is touched.
func (s *CarService) UpdateCar(id int, form *dtos.CarForm, uploads []PhotoUpload, removePaths []string) (*models.CarModel, error) {
	var car models.CarModel
	if err := s.db.First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.validateCarForm(form); err != nil {
		return nil, err
	}
	if form.Version > 0 && form.Version != car.Version {
		return nil, ErrStaleWrite
	}

	sequence, err := s.applyPhotoChanges(s.photoSequence(&car), removePaths, uploads)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.CarModel{}).
		Where("id = ? AND version = ?", id, car.Version).
		Updates(map[string]interface{}{
			"client_id":    form.ClientId,
			"make":         strings.TrimSpace(form.Make),
			"model":        strings.TrimSpace(form.Model),
			"year":         form.Year,
			"plate":        strings.TrimSpace(form.Plate),
			"vin":          strings.TrimSpace(form.VIN),
			"photo":        firstPath(sequence),
			"extra_photos": models.EncodePhotoList(restPaths(sequence)),
			"version":      car.Version + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrStaleWrite
	}

	return s.GetCarByID(id)
}

// DeleteCar removes the car together with its tires, orders and the completed
// work hanging off those orders. Photo files are removed first; a file that
// is already gone never blocks the delete.
func (s *CarService) DeleteCar(id int) error {
	var car models.CarModel
	if err := s.db.Preload("Orders").First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	for _, path := range s.photoSequence(&car) {
		if err := s.store.Remove(path); err != nil {
			s.logger.Warn("Failed to delete car photo",
				zap.Int("carId", id), zap.String("path", path), zap.Error(err))
		}
	}

	numbers := make([]string, 0, len(car.Orders))
	for _, order := range car.Orders {
		numbers = append(numbers, order.Number)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if len(numbers) > 0 {
			if err := tx.Where("order_number IN ?", numbers).Delete(&models.CompletedWorkModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("car_id = ?", id).Delete(&models.OrderModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("car_id = ?", id).Delete(&models.TireModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CarModel{}, id).Error
	})
}

// ======================= PHOTO RECONCILIATION =======================

// photoSequence rebuilds the ordered photo set of a car: primary first, then
// the extras, blanks and duplicates dropped. A malformed extras payload is
// logged and treated as empty so one bad row cannot wedge the car.
func (s *CarService) photoSequence(car *models.CarModel) []string {
	extras, err := models.DecodePhotoList(car.ExtraPhotos)
	if err != nil {
		s.logger.Warn("Malformed extra photo list, treating as empty",
			zap.Int("carId", car.ID), zap.Error(err))
		extras = nil
	}

	sequence := make([]string, 0, len(extras)+1)
	seen := make(map[string]struct{}, len(extras)+1)
	for _, path := range append([]string{car.Photo}, extras...) {
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		sequence = append(sequence, path)
	}

	return sequence
}

// applyPhotoChanges plays the removals and then the uploads against the
// storage adapter and returns the resulting sequence. Removal paths that are
// not part of the current set are ignored, and a failed file delete is logged
// but does not stop the operation. A failed save aborts everything before any
// entity state changes.
func (s *CarService) applyPhotoChanges(sequence []string, removePaths []string, uploads []PhotoUpload) ([]string, error) {
	for _, path := range removePaths {
		if !containsPath(sequence, path) {
			continue
		}
		if err := s.store.Remove(path); err != nil {
			s.logger.Warn("Failed to delete photo file", zap.String("path", path), zap.Error(err))
		}
		sequence = dropPath(sequence, path)
	}

	for _, upload := range uploads {
		if upload.Size == 0 {
			continue
		}
		path, err := s.store.Save(upload.Content, upload.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPhotoStorage, err)
		}
		if !containsPath(sequence, path) {
			sequence = append(sequence, path)
		}
	}

	return sequence, nil
}

func (s *CarService) validateCarForm(form *dtos.CarForm) error {
	if form.ClientId <= 0 {
		return invalid("clientId", "is required")
	}
	if strings.TrimSpace(form.Make) == "" {
		return invalid("make", "is required")
	}
	if len(form.Make) > 100 {
		return invalid("make", "must be at most 100 characters")
	}
	if strings.TrimSpace(form.Model) == "" {
		return invalid("model", "is required")
	}
	if len(form.Model) > 100 {
		return invalid("model", "must be at most 100 characters")
	}
	if form.Year < 1900 || form.Year > 2100 {
		return invalid("year", "must be between 1900 and 2100")
	}
	if len(form.Plate) > 20 {
		return invalid("plate", "must be at most 20 characters")
	}
	if len(form.VIN) > 17 {
		return invalid("vin", "must be at most 17 characters")
	}

	var count int64
	if err := s.db.Model(&models.ClientModel{}).Where("id = ?", form.ClientId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("client %d: %w", form.ClientId, ErrNotFound)
	}

	return nil
}

func firstPath(sequence []string) string {
	if len(sequence) == 0 {
		return ""
	}
	return sequence[0]
}

func restPaths(sequence []string) []string {
	if len(sequence) <= 1 {
		return nil
	}
	return sequence[1:]
}

func containsPath(sequence []string, path string) bool {
	for _, p := range sequence {
		if p == path {
			return true
		}
	}
	return false
}

func dropPath(sequence []string, path string) []string {
	kept := sequence[:0]
	for _, p := range sequence {
		if p != path {
			kept = append(kept, p)
		}
	}
	return kept
}
