package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"interioai-backend/internal/catalog"
	"interioai-backend/internal/models"
	"interioai-backend/internal/services"
	"interioai-backend/utils"
)

type FurnitureHandler struct {
	costService services.ICostService
}

func NewFurnitureHandler(costService services.ICostService) *FurnitureHandler {
	return &FurnitureHandler{
		costService: costService,
	}
}

func (h *FurnitureHandler) RegisterRoutes(router *gin.Engine) {
	furnitureGr := router.Group("/api/furniture")
	furnitureGr.GET("/:roomType", h.GetFurniture)
	furnitureGr.POST("/calculate-cost", h.CalculateCost)
}

// GetFurniture returns the full furniture map for a room type. Unknown room
// types answer with the default room's catalog rather than a 404.
func (h *FurnitureHandler) GetFurniture(c *gin.Context) {
	roomType := c.Param("roomType")

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"furniture": catalog.RoomFurniture(roomType),
	}))
}

// CalculateCost totals the selected furniture items. Malformed payloads
// (including a non-numeric quantity) surface as a 500 with the raw message;
// unresolvable selections are silently omitted from the breakdown.
func (h *FurnitureHandler) CalculateCost(c *gin.Context) {
	var req models.CalculateCostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid calculate-cost request: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}

	breakdown := h.costService.Calculate(req.Selections)

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(breakdown))
}
