package models

import "time"

// OrderModel is a workshop order. Number is the externally visible order key,
// distinct from the row id; completed work attaches to it by that number.
// Whether an order is active or completed is derived from the completed-work
// table and is never stored here.
type OrderModel struct {
	Id          int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Number      string       `json:"number" gorm:"column:number;type:varchar(50);not null;uniqueIndex"`
	CarId       int          `json:"carId" gorm:"column:car_id;not null;index"`
	Car         *CarModel    `json:"car,omitempty" gorm:"foreignKey:CarId;references:ID"`
	MasterId    *int         `json:"masterId" gorm:"column:master_id"`
	Master      *MasterModel `json:"master,omitempty" gorm:"foreignKey:MasterId;references:Id"`
	OrderDate   time.Time    `json:"orderDate" gorm:"column:order_date;not null;index"`
	PaymentDate *time.Time   `json:"paymentDate" gorm:"column:payment_date"`

	CompletedWorks []CompletedWorkModel `json:"completedWorks,omitempty" gorm:"foreignKey:OrderNumber;references:Number;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
