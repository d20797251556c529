package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interioai-backend/internal/models"
	"interioai-backend/internal/services"
	"interioai-backend/utils"
)

type DesignHandler struct {
	designService services.IDesignService
}

func NewDesignHandler(designService services.IDesignService) *DesignHandler {
	return &DesignHandler{
		designService: designService,
	}
}

func (h *DesignHandler) RegisterRoutes(router *gin.Engine) {
	designGr := router.Group("/api/designs")
	designGr.POST("", h.SaveDesign)
	designGr.GET("/:userID", h.GetUserDesigns)
}

func (h *DesignHandler) SaveDesign(c *gin.Context) {
	var req models.SaveDesignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid save-design request format: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "Invalid request format"))
		return
	}

	design, err := h.designService.SaveDesign(&req)
	if err != nil {
		log.Printf("Save design failed for user %s: %v", req.UserID, err)
		statusCode, errorCode := h.mapDesignError(err)
		c.JSON(statusCode, utils.CreateErrorResponse(errorCode, err.Error()))
		return
	}

	log.Printf("Design %s saved for user %s", design.ID, design.UserID)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(gin.H{
		"message": "Design saved successfully",
		"design":  design,
	}))
}

func (h *DesignHandler) GetUserDesigns(c *gin.Context) {
	userID := c.Param("userID")

	designs, err := h.designService.GetUserDesigns(userID)
	if err != nil {
		log.Printf("List designs failed for user %s: %v", userID, err)
		statusCode, errorCode := h.mapDesignError(err)
		c.JSON(statusCode, utils.CreateErrorResponse(errorCode, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"designs": designs,
		"total":   len(designs),
	}))
}

func (h *DesignHandler) mapDesignError(err error) (int, string) {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "user not found"):
		return http.StatusNotFound, "USER_NOT_FOUND"
	case strings.Contains(errorMsg, "missing field"):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
