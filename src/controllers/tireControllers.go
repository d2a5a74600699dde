package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type TireController struct {
	service *services.TireService
}

func NewTireController(service *services.TireService) *TireController {
	return &TireController{service: service}
}

// GetTires handles GET requests to retrieve tire records, optionally filtered
// by carId
func (c *TireController) GetTires(ctx *gin.Context) {
	carIdStr := ctx.Query("carId")
	var carId *int
	if carIdStr != "" {
		parsedId, err := strconv.Atoi(carIdStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carId parameter"})
			return
		}
		carId = &parsedId
	}

	tires, err := c.service.GetAllTires(carId)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tires)
}

// GetTireByID handles GET requests for a single tire record
func (c *TireController) GetTireByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	tire, err := c.service.GetTireByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tire)
}

// CreateTire handles POST requests to create a new tire record
func (c *TireController) CreateTire(ctx *gin.Context) {
	var tire models.TireModel
	if err := ctx.ShouldBindJSON(&tire); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdTire, err := c.service.CreateTire(&tire)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdTire)
}

// UpdateTire handles PUT requests to update an existing tire record
func (c *TireController) UpdateTire(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var updatedData models.TireModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedTire, err := c.service.UpdateTire(id, &updatedData)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedTire)
}

// DeleteTire handles DELETE requests to remove a tire record
func (c *TireController) DeleteTire(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := c.service.DeleteTire(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
