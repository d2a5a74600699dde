package dtos

import "time"

// DashboardStats is the read-only snapshot behind the dashboard page.
type DashboardStats struct {
	ClientsCount  int64 `json:"clientsCount"`
	CarsCount     int64 `json:"carsCount"`
	OrdersCount   int64 `json:"ordersCount"`
	MastersCount  int64 `json:"mastersCount"`
	ServicesCount int64 `json:"servicesCount"`
	TiresCount    int64 `json:"tiresCount"`

	ActiveOrders    int64 `json:"activeOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	TodayOrders     int64 `json:"todayOrders"`
	UnpaidOrders    int64 `json:"unpaidOrders"`
	AssignedOrders  int64 `json:"assignedOrders"`

	TopClients   []TopClientDTO   `json:"topClients"`
	RecentOrders []RecentOrderDTO `json:"recentOrders"`
}

// TopClientDTO is one row of the clients-by-order-count ranking.
type TopClientDTO struct {
	ClientId   int    `json:"clientId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	OrderCount int64  `json:"orderCount"`
}

// RecentOrderDTO is a flattened order row for the dashboard's latest-orders
// list, with its car, owning client and assigned master already joined in.
type RecentOrderDTO struct {
	OrderId     int        `json:"orderId"`
	Number      string     `json:"number"`
	OrderDate   time.Time  `json:"orderDate"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	Completed   bool       `json:"completed"`
	CarMake     string     `json:"carMake"`
	CarModel    string     `json:"carModel"`
	CarPlate    string     `json:"carPlate,omitempty"`
	ClientName  *string    `json:"clientName,omitempty"`
	MasterName  *string    `json:"masterName,omitempty"`
}
