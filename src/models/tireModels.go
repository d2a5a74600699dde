package models

type TireModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	CarId        int       `json:"carId" gorm:"column:car_id;not null;index"`
	Car          *CarModel `json:"car,omitempty" gorm:"foreignKey:CarId;references:ID"`
	Kind         string    `json:"kind" gorm:"column:kind;type:varchar(50)"`
	Season       string    `json:"season" gorm:"column:season;type:varchar(50)"`
	Manufacturer string    `json:"manufacturer" gorm:"column:manufacturer;type:varchar(100)"`
	Model        string    `json:"model" gorm:"column:model;type:varchar(100)"`
	Size         string    `json:"size" gorm:"column:size;type:varchar(50)"`
	LoadIndex    int       `json:"loadIndex" gorm:"column:load_index;type:int"`
	WearPercent  int       `json:"wearPercent" gorm:"column:wear_percent;type:int;not null"`
	Pressure     float64   `json:"pressure" gorm:"column:pressure;type:numeric(4,2);not null"`
}
