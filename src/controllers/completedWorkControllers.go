package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CompletedWorkController struct {
	service *services.CompletedWorkService
}

func NewCompletedWorkController(service *services.CompletedWorkService) *CompletedWorkController {
	return &CompletedWorkController{service: service}
}

// GetCompletedWorks handles GET requests to retrieve completed work rows,
// optionally filtered by orderNumber
func (c *CompletedWorkController) GetCompletedWorks(ctx *gin.Context) {
	var orderNumber *string
	if number := ctx.Query("orderNumber"); number != "" {
		orderNumber = &number
	}

	works, err := c.service.GetAllCompletedWorks(orderNumber)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, works)
}

// GetCompletedWorkByID handles GET requests for a single completed work row
func (c *CompletedWorkController) GetCompletedWorkByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	work, err := c.service.GetCompletedWorkByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, work)
}

// CreateCompletedWork handles POST requests to record a rendered service
// against an order
func (c *CompletedWorkController) CreateCompletedWork(ctx *gin.Context) {
	var work models.CompletedWorkModel
	if err := ctx.ShouldBindJSON(&work); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdWork, err := c.service.CreateCompletedWork(&work)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdWork)
}

// DeleteCompletedWork handles DELETE requests to remove a completed work row
func (c *CompletedWorkController) DeleteCompletedWork(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := c.service.DeleteCompletedWork(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
