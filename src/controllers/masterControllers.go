package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type MasterController struct {
	service *services.MasterService
}

func NewMasterController(service *services.MasterService) *MasterController {
	return &MasterController{service: service}
}

// GetMasters handles GET requests to retrieve all master records
func (c *MasterController) GetMasters(ctx *gin.Context) {
	masters, err := c.service.GetAllMasters()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, masters)
}

// GetMasterByID handles GET requests for a single master record
func (c *MasterController) GetMasterByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	master, err := c.service.GetMasterByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, master)
}

// CreateMaster handles POST requests to create a new master record
func (c *MasterController) CreateMaster(ctx *gin.Context) {
	var master models.MasterModel
	if err := ctx.ShouldBindJSON(&master); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdMaster, err := c.service.CreateMaster(&master)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdMaster)
}

// UpdateMaster handles PUT requests to update an existing master record
func (c *MasterController) UpdateMaster(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var updatedData models.MasterModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedMaster, err := c.service.UpdateMaster(id, &updatedData)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedMaster)
}

// DeleteMaster handles DELETE requests to remove a master record. Masters
// referenced by completed work cannot be removed.
func (c *MasterController) DeleteMaster(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := c.service.DeleteMaster(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
