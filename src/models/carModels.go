package models

import "gorm.io/datatypes"

// CarModel holds the vehicle card. Photo is the root-relative path of the
// primary photo (empty when the car has none); ExtraPhotos carries the rest of
// the photo sequence as a JSON array of paths (see photoList.go). Version is
// the optimistic-concurrency token bumped on every update.
type CarModel struct {
	ID          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientId    int            `json:"clientId" gorm:"column:client_id;not null;index"`
	Client      *ClientModel   `json:"client,omitempty" gorm:"foreignKey:ClientId;references:Id"`
	Make        string         `json:"make" gorm:"column:make;type:varchar(100);not null"`
	Model       string         `json:"model" gorm:"column:model;type:varchar(100);not null"`
	Year        int            `json:"year" gorm:"column:year;type:int;not null"`
	Plate       string         `json:"plate" gorm:"column:plate;type:varchar(20)"`
	VIN         string         `json:"vin" gorm:"column:vin;type:varchar(17)"`
	Photo       string         `json:"photo" gorm:"column:photo;type:varchar(255)"`
	ExtraPhotos datatypes.JSON `json:"extraPhotos" gorm:"column:extra_photos"`
	Version     int            `json:"version" gorm:"column:version;not null;default:1"`

	Tires  []TireModel  `json:"tires,omitempty" gorm:"foreignKey:CarId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Orders []OrderModel `json:"orders,omitempty" gorm:"foreignKey:CarId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
