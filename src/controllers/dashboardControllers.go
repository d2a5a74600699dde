package controllers

import (
	"net/http"
	"strconv"

	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// GetStats handles GET requests for the dashboard snapshot
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.service.GetStats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetTopClients handles GET requests for the clients-by-order-count ranking.
// The optional "limit" query parameter defaults to 5.
func (c *DashboardController) GetTopClients(ctx *gin.Context) {
	limit := 5
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	topClients, err := c.service.TopClients(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, topClients)
}

// GetRecentOrders handles GET requests for the latest orders list. The
// optional "limit" query parameter defaults to 10.
func (c *DashboardController) GetRecentOrders(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	recentOrders, err := c.service.RecentOrders(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, recentOrders)
}
