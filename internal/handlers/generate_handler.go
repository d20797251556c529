package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"interioai-backend/internal/models"
	"interioai-backend/internal/services"
	"interioai-backend/internal/storage"
	"interioai-backend/utils"
)

type GenerateHandler struct {
	renderService services.IRenderService
	store         *storage.LocalStore
	maxUploadMB   int64
}

func NewGenerateHandler(renderService services.IRenderService, store *storage.LocalStore, maxUploadMB int64) *GenerateHandler {
	return &GenerateHandler{
		renderService: renderService,
		store:         store,
		maxUploadMB:   maxUploadMB,
	}
}

func (h *GenerateHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/generate", h.Generate)
	// Legacy alias kept for older frontends.
	router.POST("/generate", h.Generate)

	router.GET("/uploads/:filename", h.ServeUpload)
	router.GET("/output/:filename", h.ServeOutput)
}

// Generate accepts a room photo plus room metadata and produces the
// before/after image pair. AI failures degrade to a copy of the original, so
// the only client-visible errors are a missing or invalid photo.
func (h *GenerateHandler) Generate(c *gin.Context) {
	params := models.GenerateParams{
		RoomType: formValueOrDefault(c, "roomType", "Living Hall"),
		Style:    formValueOrDefault(c, "style", "Modern"),
		Palette:  c.PostForm("palette"),
		Width:    formValueOrDefault(c, "width", "10"),
		Length:   formValueOrDefault(c, "length", "12"),
		UserID:   c.PostForm("user_id"),
	}
	if params.Palette == "" {
		params.Palette = c.PostForm("customColor")
	}
	if params.Palette == "" {
		params.Palette = "neutral"
	}

	log.Printf("Generation request: %s, %s, %s, %sft x %sft", params.RoomType, params.Style, params.Palette, params.Width, params.Length)

	photo, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", "No input image provided"))
		return
	}

	if err := utils.ValidateFile(photo, services.AllowedPhotoExts(), h.maxUploadMB); err != nil {
		log.Printf("Photo validation failed: %v", err)
		c.JSON(http.StatusBadRequest, utils.CreateErrorResponse("VALIDATION_ERROR", err.Error()))
		return
	}

	file, err := photo.Open()
	if err != nil {
		log.Printf("Failed to open uploaded photo: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}
	defer file.Close()

	result, err := h.renderService.Generate(c.Request.Context(), file, photo.Filename, params)
	if err != nil {
		log.Printf("Generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, utils.CreateErrorResponse("INTERNAL_ERROR", err.Error()))
		return
	}

	log.Printf("Generation complete: before=%s after=%s", result.BeforeURL, result.AfterURL)
	c.JSON(http.StatusOK, utils.CreateSuccessResponse(result))
}

func (h *GenerateHandler) ServeUpload(c *gin.Context) {
	h.serveStored(c, h.store.UploadPath(c.Param("filename")))
}

func (h *GenerateHandler) ServeOutput(c *gin.Context) {
	h.serveStored(c, h.store.OutputPath(c.Param("filename")))
}

func (h *GenerateHandler) serveStored(c *gin.Context, path string) {
	// Store paths are built with filepath.Base, so a traversal attempt just
	// misses.
	if filepath.Base(c.Param("filename")) != c.Param("filename") {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "File not found"))
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, utils.CreateErrorResponse("NOT_FOUND", "File not found"))
		return
	}
	c.File(path)
}

func formValueOrDefault(c *gin.Context, key, defaultValue string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return defaultValue
}
