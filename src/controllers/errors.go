package controllers

import (
	"errors"
	"net/http"

	"github.com/PitStop/PitStop-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the matching HTTP response.
func respondError(ctx *gin.Context, err error) {
	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStaleWrite),
		errors.Is(err, services.ErrDuplicateNumber),
		errors.Is(err, services.ErrRestricted):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
