package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"interioai-backend/internal/catalog"
	"interioai-backend/internal/models"
	"interioai-backend/internal/render"
	"interioai-backend/internal/repository"
	"interioai-backend/internal/storage"
	"interioai-backend/utils"
)

var allowedPhotoExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

type IRenderService interface {
	Generate(ctx context.Context, photo io.Reader, originalName string, params models.GenerateParams) (*models.GenerateResult, error)
	AIAvailable() bool
}

type RenderService struct {
	store    *storage.LocalStore
	renderer render.Renderer
	userRepo repository.IUserRepository
	timeout  time.Duration

	// now is swapped out in tests for deterministic filenames.
	now func() time.Time
}

func NewRenderService(store *storage.LocalStore, renderer render.Renderer, userRepo repository.IUserRepository, timeout time.Duration) *RenderService {
	return &RenderService{
		store:    store,
		renderer: renderer,
		userRepo: userRepo,
		timeout:  timeout,
		now:      time.Now,
	}
}

func (s *RenderService) AIAvailable() bool {
	return s.renderer.Available()
}

// Generate runs the render pipeline: persist the original as the "before"
// image, build scene metadata, invoke the renderer and degrade to a plain
// copy on any renderer failure. It only errors when the upload itself cannot
// be stored; an AI failure is never visible to the client.
func (s *RenderService) Generate(ctx context.Context, photo io.Reader, originalName string, params models.GenerateParams) (*models.GenerateResult, error) {
	timestamp := s.now().Unix()

	safeName := utils.SanitizeFilename(originalName)
	if safeName == "" {
		safeName = fmt.Sprintf("upload_%d.png", timestamp)
	}

	baseName := fmt.Sprintf("%d_%s", timestamp, safeName)
	beforeName := "before_" + baseName
	afterName := "after_" + baseName
	// imaging has no webp encoder, so webp uploads get a png after-image.
	if strings.EqualFold(filepath.Ext(afterName), ".webp") {
		afterName = strings.TrimSuffix(afterName, filepath.Ext(afterName)) + ".png"
	}

	beforePath, err := s.store.SaveUpload(beforeName, photo)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded photo: %w", err)
	}
	afterPath := s.store.OutputPath(afterName)

	scene := catalog.BuildScene(params.RoomType, params.Style, params.Palette)

	renderCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.renderer.RenderRoom(renderCtx, beforePath, afterPath, scene); err != nil {
		log.Printf("renderer %s failed, copying original: %v", s.renderer.Name(), err)
		if copyErr := s.store.CopyToOutput(beforePath, afterName); copyErr != nil {
			return nil, fmt.Errorf("failed to write fallback image: %w", copyErr)
		}
	} else if !s.store.OutputExists(afterName) {
		log.Printf("renderer %s produced no usable output, copying original", s.renderer.Name())
		if copyErr := s.store.CopyToOutput(beforePath, afterName); copyErr != nil {
			return nil, fmt.Errorf("failed to write fallback image: %w", copyErr)
		}
	}

	return &models.GenerateResult{
		UserID:    s.resolveUserID(params.UserID),
		BeforeURL: "/uploads/" + beforeName,
		AfterURL:  "/output/" + afterName,
		RoomType:  params.RoomType,
	}, nil
}

// resolveUserID is best-effort: a missing or unknown id nulls out, it never
// fails the request.
func (s *RenderService) resolveUserID(userID string) *string {
	if userID == "" {
		return nil
	}
	if _, err := s.userRepo.GetUserByID(userID); err != nil {
		log.Printf("generate request carried unknown user_id %s", userID)
		return nil
	}
	return &userID
}

// AllowedPhotoExts exposes the accepted upload extensions to the handler.
func AllowedPhotoExts() []string {
	return allowedPhotoExts
}
