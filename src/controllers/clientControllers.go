package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/models"
	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ClientController struct {
	service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{service: service}
}

// GetClients handles GET requests to retrieve all client records
func (c *ClientController) GetClients(ctx *gin.Context) {
	clients, err := c.service.GetAllClients()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clients)
}

// GetClientByID handles GET requests for a single client record
func (c *ClientController) GetClientByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	client, err := c.service.GetClientByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// CreateClient handles POST requests to create a new client record
func (c *ClientController) CreateClient(ctx *gin.Context) {
	var client models.ClientModel
	if err := ctx.ShouldBindJSON(&client); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdClient, err := c.service.CreateClient(&client)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, createdClient)
}

// UpdateClient handles PUT requests to update an existing client record
func (c *ClientController) UpdateClient(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var updatedData models.ClientModel
	if err := ctx.ShouldBindJSON(&updatedData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedClient, err := c.service.UpdateClient(id, &updatedData)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updatedClient)
}

// DeleteClient handles DELETE requests to remove a client record together
// with their cars
func (c *ClientController) DeleteClient(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := c.service.DeleteClient(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
