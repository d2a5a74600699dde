package controllers

import (
	"bytes"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	carIdStr := c.Query("carId")
	var carId *int
	if carIdStr != "" {
		parsedId, err := strconv.Atoi(carIdStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid carId parameter"})
			return
		}
		carId = &parsedId
	}

	orders, err := oc.service.GetAllOrders(carId)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	order, err := oc.service.GetOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, order)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.OrderModel
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	createdOrder, err := oc.service.CreateOrder(&order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(201, createdOrder)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var updatedData models.OrderModel
	if err := c.ShouldBindJSON(&updatedData); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updatedOrder, err := oc.service.UpdateOrder(id, &updatedData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, updatedOrder)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := oc.service.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Order deleted successfully"})
}

// ExportOrders sends the whole order book as an .xlsx download. The workbook
// is built in memory first so a failed build never leaks a half-written file.
func (oc *OrderController) ExportOrders(c *gin.Context) {
	var buf bytes.Buffer
	if err := oc.service.ExportXLSX(&buf); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
