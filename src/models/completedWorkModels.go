package models

// CompletedWorkModel is one billed service rendered against an order. Rows
// reference the order by its external number, not by row id, and are never
// updated after creation.
type CompletedWorkModel struct {
	Id          int           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber string        `json:"orderNumber" gorm:"column:order_number;type:varchar(50);not null;index"`
	Order       *OrderModel   `json:"order,omitempty" gorm:"foreignKey:OrderNumber;references:Number"`
	ServiceCode int           `json:"serviceCode" gorm:"column:service_code;not null"`
	Service     *ServiceModel `json:"service,omitempty" gorm:"foreignKey:ServiceCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	MasterId    int           `json:"masterId" gorm:"column:master_id;not null"`
	Master      *MasterModel  `json:"master,omitempty" gorm:"foreignKey:MasterId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
