package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interioai-backend/internal/services"
	"interioai-backend/utils"
)

type UserHandler struct {
	userService services.IUserService
}

func NewUserHandler(userService services.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/users/:id", h.GetUserByID)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		log.Printf("Get user %s failed: %v", userID, err)
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, utils.CreateErrorResponse("USER_NOT_FOUND", "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"user": user,
	}))
}
