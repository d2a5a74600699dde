package dtos

// CarForm carries the car fields of the create/update requests. Photo files
// travel in the same multipart payload and are read from it directly by the
// controller; RemovePhotos lists stored photo paths the caller wants gone.
// Version is the optimistic-concurrency token: zero means "no check, last
// writer wins".
type CarForm struct {
	ClientId     int      `form:"clientId" json:"clientId"`
	Make         string   `form:"make" json:"make"`
	Model        string   `form:"model" json:"model"`
	Year         int      `form:"year" json:"year"`
	Plate        string   `form:"plate" json:"plate"`
	VIN          string   `form:"vin" json:"vin"`
	Version      int      `form:"version" json:"version"`
	RemovePhotos []string `form:"removePhotos" json:"removePhotos"`
}
