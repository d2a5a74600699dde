package models

type MasterModel struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"firstName" gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string `json:"lastName" gorm:"column:last_name;type:varchar(100);not null"`
	Phone     string `json:"phone" gorm:"column:phone;type:varchar(30)"`
	Specialty string `json:"specialty" gorm:"column:specialty;type:varchar(100)"`
}
