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

type AuthHandler struct {
	userService services.IUserService
}

func NewAuthHandler(userService services.IUserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (a *AuthHandler) RegisterRoutes(router *gin.Engine) {
	authGr := router.Group("/api/auth")
	authGr.POST("/signup", a.Signup)
	authGr.POST("/login", a.Login)
}

// Signup handles user registration
func (a *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid signup request format: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "Missing required fields"))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "Missing required fields"))
		return
	}

	user, err := a.userService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		log.Printf("Signup failed for %s: %v", req.Email, err)
		statusCode, errorCode := a.mapSignupError(err)
		c.JSON(statusCode, utils.CreateErrorResponse(errorCode, err.Error()))
		return
	}

	log.Printf("Successful signup for user %s", user.ID)
	c.JSON(http.StatusCreated, utils.CreateSuccessResponse(gin.H{
		"message": "User registered successfully",
		"user":    user,
	}))
}

// Login handles stateless authentication: on success the client keeps the
// returned user id, no token or session is issued.
func (a *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Invalid login request format: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "Email and password required"))
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "Email and password required"))
		return
	}

	user, err := a.userService.Login(req.Email, req.Password)
	if err != nil {
		log.Printf("Login failed for %s: %v", req.Email, err)
		c.JSON(http.StatusUnauthorized, utils.CreateErrorResponse("INVALID_CREDENTIALS", "Invalid email or password"))
		return
	}

	log.Printf("Successful login for user %s", user.ID)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"message": "Login successful",
		"user":    user,
		"user_id": user.ID,
	}))
}

func (a *AuthHandler) mapSignupError(err error) (int, string) {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "already registered"):
		return http.StatusConflict, "EMAIL_ALREADY_REGISTERED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
