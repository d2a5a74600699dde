package services

import (
	"strings"
	"time"

	"github.com/PitStop/PitStop-Backend/src/dtos"
	"github.com/PitStop/PitStop-Backend/src/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db     *gorm.DB
	orders *OrderService
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(db *gorm.DB, orders *OrderService) *DashboardService {
	return &DashboardService{db: db, orders: orders}
}

// GetStats assembles the dashboard snapshot. Everything is recomputed from
// the database on every call; the active and completed counts come from the
// same pass over the order table, so they always add up to the total.
func (s *DashboardService) GetStats() (*dtos.DashboardStats, error) {
	stats := &dtos.DashboardStats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.ClientModel{}, &stats.ClientsCount},
		{&models.CarModel{}, &stats.CarsCount},
		{&models.OrderModel{}, &stats.OrdersCount},
		{&models.MasterModel{}, &stats.MastersCount},
		{&models.ServiceModel{}, &stats.ServicesCount},
		{&models.TireModel{}, &stats.TiresCount},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	completed, err := s.orders.CompletedNumberSet()
	if err != nil {
		return nil, err
	}

	var orders []models.OrderModel
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	year, month, day := now.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	for _, order := range orders {
		if _, done := completed[order.Number]; done {
			stats.CompletedOrders++
		} else {
			stats.ActiveOrders++
		}
		if !order.OrderDate.Before(dayStart) && order.OrderDate.Before(dayEnd) {
			stats.TodayOrders++
		}
		if order.PaymentDate == nil {
			stats.UnpaidOrders++
		}
		if order.MasterId != nil {
			stats.AssignedOrders++
		}
	}

	stats.TopClients, err = s.TopClients(5)
	if err != nil {
		return nil, err
	}
	stats.RecentOrders, err = s.RecentOrders(10)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// TopClients ranks clients by how many orders their cars have accumulated.
// Ties break on client id ascending, so the ranking is stable across calls.
func (s *DashboardService) TopClients(n int) ([]dtos.TopClientDTO, error) {
	if n <= 0 {
		return []dtos.TopClientDTO{}, nil
	}

	var rows []dtos.TopClientDTO
	err := s.db.Table("client_models AS cl").
		Select(`cl.id AS client_id,
			cl.first_name,
			cl.last_name,
			COUNT(o.id) AS order_count`).
		Joins("LEFT JOIN car_models ca ON ca.client_id = cl.id").
		Joins("LEFT JOIN order_models o ON o.car_id = ca.id").
		Group("cl.id, cl.first_name, cl.last_name").
		Order("order_count DESC, cl.id ASC").
		Limit(n).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []dtos.TopClientDTO{}
	}
	return rows, nil
}

// RecentOrders returns the n newest orders flattened for display, with the
// derived completed flag already resolved.
func (s *DashboardService) RecentOrders(n int) ([]dtos.RecentOrderDTO, error) {
	if n <= 0 {
		return []dtos.RecentOrderDTO{}, nil
	}

	var orders []models.OrderModel
	err := s.db.Preload("Car").Preload("Car.Client").Preload("Master").
		Order("order_date DESC, id DESC").
		Limit(n).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	completed, err := s.orders.CompletedNumberSet()
	if err != nil {
		return nil, err
	}

	recent := make([]dtos.RecentOrderDTO, 0, len(orders))
	for _, order := range orders {
		dto := dtos.RecentOrderDTO{
			OrderId:     order.Id,
			Number:      order.Number,
			OrderDate:   order.OrderDate,
			PaymentDate: order.PaymentDate,
		}
		_, dto.Completed = completed[order.Number]

		if order.Car != nil {
			dto.CarMake = order.Car.Make
			dto.CarModel = order.Car.Model
			dto.CarPlate = order.Car.Plate
			if order.Car.Client != nil {
				name := strings.TrimSpace(order.Car.Client.FirstName + " " + order.Car.Client.LastName)
				if name != "" {
					dto.ClientName = &name
				}
			}
		}
		if order.Master != nil {
			name := strings.TrimSpace(order.Master.FirstName + " " + order.Master.LastName)
			if name != "" {
				dto.MasterName = &name
			}
		}

		recent = append(recent, dto)
	}

	return recent, nil
}
