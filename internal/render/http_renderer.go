package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"

	"interioai-backend/internal/catalog"
)

// renderStrength controls how far the renderer may deviate from the original
// photo.
const renderStrength = "0.75"

// HTTPRenderer calls an external image-to-image rendering service. The
// service accepts a multipart POST (image + scene metadata) on /render and
// responds with the generated image bytes.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRenderer(baseURL string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *HTTPRenderer) Name() string {
	return "http"
}

func (r *HTTPRenderer) Available() bool {
	return true
}

func (r *HTTPRenderer) RenderRoom(ctx context.Context, originalPath, outputPath string, scene catalog.Scene) error {
	body, contentType, err := r.buildRequestBody(originalPath, scene)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", body)
	if err != nil {
		return fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("render request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("renderer returned status %d: %s", resp.StatusCode, payload)
	}

	// Decode through imaging so an unusable payload surfaces as an error
	// here instead of a corrupt file on disk.
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return fmt.Errorf("renderer returned undecodable image: %w", err)
	}

	if err := imaging.Save(img, outputPath); err != nil {
		return fmt.Errorf("failed to save rendered image: %w", err)
	}

	return nil
}

func (r *HTTPRenderer) buildRequestBody(originalPath string, scene catalog.Scene) (*bytes.Buffer, string, error) {
	original, err := os.Open(originalPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open original image: %w", err)
	}
	defer original.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filepath.Base(originalPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image part: %w", err)
	}
	if _, err := io.Copy(part, original); err != nil {
		return nil, "", fmt.Errorf("failed to write image part: %w", err)
	}

	sceneJSON, err := json.Marshal(scene)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal scene metadata: %w", err)
	}
	if err := writer.WriteField("room_data", string(sceneJSON)); err != nil {
		return nil, "", fmt.Errorf("failed to write scene metadata: %w", err)
	}
	if err := writer.WriteField("strength", renderStrength); err != nil {
		return nil, "", fmt.Errorf("failed to write strength field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize request body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
