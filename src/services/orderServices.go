package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PitStop/PitStop-Backend/src/dtos"
	"github.com/PitStop/PitStop-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// ======================= ORDERS =======================

// GetAllOrders retrieves all orders, newest first, optionally narrowed to one
// car. Each order carries its derived completed flag.
func (s *OrderService) GetAllOrders(carId *int) ([]dtos.OrderView, error) {
	var orders []models.OrderModel

	query := s.db.Preload("Car").Preload("Car.Client").Preload("Master")
	if carId != nil {
		query = query.Where("car_id = ?", *carId)
	}
	if err := query.Order("order_date DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	completed, err := s.CompletedNumberSet()
	if err != nil {
		return nil, err
	}

	views := make([]dtos.OrderView, 0, len(orders))
	for _, order := range orders {
		_, done := completed[order.Number]
		views = append(views, dtos.OrderView{OrderModel: order, Completed: done})
	}
	return views, nil
}

func (s *OrderService) GetOrderByID(id int) (*dtos.OrderView, error) {
	var order models.OrderModel
	err := s.db.Preload("Car").Preload("Car.Client").Preload("Master").
		Preload("CompletedWorks").
		Preload("CompletedWorks.Service").
		Preload("CompletedWorks.Master").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &dtos.OrderView{OrderModel: order, Completed: len(order.CompletedWorks) > 0}, nil
}

// CreateOrder creates a new order record in the database
func (s *OrderService) CreateOrder(order *models.OrderModel) (*models.OrderModel, error) {
	order.Number = strings.TrimSpace(order.Number)
	if err := s.validateOrder(order); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.OrderModel{}).Where("number = ?", order.Number).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateNumber
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder replaces the stored field values of an existing order. When the
// number changes, completed work rows referencing the old number are moved
// along with it in the same transaction.
func (s *OrderService) UpdateOrder(id int, updatedData *models.OrderModel) (*models.OrderModel, error) {
	var order models.OrderModel
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updatedData.Number = strings.TrimSpace(updatedData.Number)
	if err := s.validateOrder(updatedData); err != nil {
		return nil, err
	}

	oldNumber := order.Number
	if updatedData.Number != oldNumber {
		var count int64
		if err := s.db.Model(&models.OrderModel{}).
			Where("number = ? AND id <> ?", updatedData.Number, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateNumber
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"number":       updatedData.Number,
			"car_id":       updatedData.CarId,
			"master_id":    updatedData.MasterId,
			"order_date":   updatedData.OrderDate,
			"payment_date": updatedData.PaymentDate,
		}).Error; err != nil {
			return err
		}
		if updatedData.Number != oldNumber {
			if err := tx.Model(&models.CompletedWorkModel{}).
				Where("order_number = ?", oldNumber).
				Update("order_number", updatedData.Number).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// DeleteOrder removes the order and the completed work recorded against its
// number in one transaction.
func (s *OrderService) DeleteOrder(id int) error {
	var order models.OrderModel
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_number = ?", order.Number).Delete(&models.CompletedWorkModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OrderModel{}, id).Error
	})
}

// ======================= DERIVED STATUS =======================

// IsCompleted reports whether any completed work references the order's
// number. The flag is computed on every call, never stored.
func (s *OrderService) IsCompleted(id int) (bool, error) {
	var order models.OrderModel
	if err := s.db.Select("number").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	var count int64
	if err := s.db.Model(&models.CompletedWorkModel{}).
		Where("order_number = ?", order.Number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CompletedNumberSet returns the distinct order numbers that have at least
// one completed work attached, as a lookup set.
func (s *OrderService) CompletedNumberSet() (map[string]struct{}, error) {
	var numbers []string
	if err := s.db.Model(&models.CompletedWorkModel{}).
		Distinct("order_number").
		Pluck("order_number", &numbers).Error; err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(numbers))
	for _, number := range numbers {
		set[number] = struct{}{}
	}
	return set, nil
}

// ======================= EXPORT =======================

// ExportXLSX writes the full order book as an Excel workbook: an Orders sheet
// with one row per order and a Summary sheet with the headline counts.
func (s *OrderService) ExportXLSX(w io.Writer) error {
	orders, err := s.GetAllOrders(nil)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Number", "Order date", "Client", "Car", "Master", "Status", "Payment date"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
	}

	completedCount := 0
	for i, order := range orders {
		row := i + 2

		client, car := "", ""
		if order.Car != nil {
			car = fmt.Sprintf("%s %s (%s)", order.Car.Make, order.Car.Model, order.Car.Plate)
			if order.Car.Client != nil {
				client = order.Car.Client.FirstName + " " + order.Car.Client.LastName
			}
		}
		master := ""
		if order.Master != nil {
			master = order.Master.FirstName + " " + order.Master.LastName
		}
		status := "active"
		if order.Completed {
			status = "completed"
			completedCount++
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), order.Number)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), order.OrderDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), client)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), car)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), master)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), status)
		if order.PaymentDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), order.PaymentDate.Format("2006-01-02"))
		}
	}

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}
	f.SetCellValue(summary, "A1", "Total orders")
	f.SetCellValue(summary, "B1", len(orders))
	f.SetCellValue(summary, "A2", "Active")
	f.SetCellValue(summary, "B2", len(orders)-completedCount)
	f.SetCellValue(summary, "A3", "Completed")
	f.SetCellValue(summary, "B3", completedCount)

	_, err = f.WriteTo(w)
	return err
}

func (s *OrderService) validateOrder(order *models.OrderModel) error {
	if strings.TrimSpace(order.Number) == "" {
		return invalid("number", "is required")
	}
	if len(order.Number) > 50 {
		return invalid("number", "must be at most 50 characters")
	}
	if order.CarId <= 0 {
		return invalid("carId", "is required")
	}
	if order.OrderDate.IsZero() {
		return invalid("orderDate", "is required")
	}

	var count int64
	if err := s.db.Model(&models.CarModel{}).Where("id = ?", order.CarId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("car %d: %w", order.CarId, ErrNotFound)
	}
	if order.MasterId != nil {
		if err := s.db.Model(&models.MasterModel{}).Where("id = ?", *order.MasterId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("master %d: %w", *order.MasterId, ErrNotFound)
		}
	}

	return nil
}
