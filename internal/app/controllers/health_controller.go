package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolly/enrolly/internal/app/models/dto"
)

// HealthController answers the root info endpoint
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Index returns a short info message
// @Summary API info
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (c *HealthController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Welcome to the course enrollment API"))
}
