package models

// ServiceModel is one entry of the workshop price list. Code is the externally
// meaningful service code and doubles as the primary key.
type ServiceModel struct {
	Code int     `json:"code" gorm:"primaryKey;column:code"`
	Name string  `json:"name" gorm:"column:name;type:varchar(150);not null"`
	Cost float64 `json:"cost" gorm:"column:cost;type:numeric(12,2);not null"`
}
