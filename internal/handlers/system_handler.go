package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"interioai-backend/internal/services"
	"interioai-backend/utils"
)

// SystemHandler serves the operational surface: liveness, client config, the
// static landing page and Prometheus metrics.
type SystemHandler struct {
	renderService services.IRenderService
	staticDir     string
}

func NewSystemHandler(renderService services.IRenderService, staticDir string) *SystemHandler {
	return &SystemHandler{
		renderService: renderService,
		staticDir:     staticDir,
	}
}

func (h *SystemHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/health", h.Health)
	router.GET("/api/config", h.Config)
	router.GET("/", h.Home)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(gin.H{
		"message":      "Backend is running",
		"ai_available": h.renderService.AIAvailable(),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	}))
}

// Config reports the server's own base URL so the frontend can build
// absolute links to /uploads and /output.
func (h *SystemHandler) Config(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	c.JSON(http.StatusOK, gin.H{
		"api_base": scheme + "://" + c.Request.Host,
	})
}

func (h *SystemHandler) Home(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}
