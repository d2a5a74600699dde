package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ServiceController struct {
	service *services.ServiceService
}

func NewServiceController(service *services.ServiceService) *ServiceController {
	return &ServiceController{service: service}
}

// GetServices handles GET requests to retrieve the price list
func (c *ServiceController) GetServices(ctx *gin.Context) {
	priceList, err := c.service.GetAllServices()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, priceList)
}

// GetServiceByCode handles GET requests for a single price list entry
func (c *ServiceController) GetServiceByCode(ctx *gin.Context) {
	code, err := strconv.Atoi(ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code"})
		return
	}

	service, err := c.service.GetServiceByCode(code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, service)
}

// CreateService handles POST requests to add a price list entry
func (c *ServiceController) CreateService(ctx *gin.Context) {
	var service models.ServiceModel
	if err := ctx.ShouldBindJSON(&service); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdService, err := c.service.CreateService(&service)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdService)
}

// UpdateService handles PUT requests to update a price list entry
func (c *ServiceController) UpdateService(ctx *gin.Context) {
	code, err := strconv.Atoi(ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code"})
		return
	}

	var updatedData models.ServiceModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedService, err := c.service.UpdateService(code, &updatedData)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedService)
}

// DeleteService handles DELETE requests to remove a price list entry
func (c *ServiceController) DeleteService(ctx *gin.Context) {
	code, err := strconv.Atoi(ctx.Param("code"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code"})
		return
	}

	if err := c.service.DeleteService(code); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ImportServices handles POST requests with an Excel price list upload
func (c *ServiceController) ImportServices(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportFromExcel(file)
	if err != nil {
		if result != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "result": result})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
