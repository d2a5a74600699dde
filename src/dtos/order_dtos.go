package dtos

import "github.com/PitStop/PitStop-Backend/src/models"

// OrderView is an order annotated with its derived status. Completed is
// recomputed from the completed-work table on every read, never stored.
type OrderView struct {
	models.OrderModel
	Completed bool `json:"completed"`
}
