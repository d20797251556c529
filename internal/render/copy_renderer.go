package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"interioai-backend/internal/catalog"
)

// CopyRenderer is the no-op fallback: the "after" image is a byte-identical
// copy of the original photo.
type CopyRenderer struct{}

func NewCopyRenderer() *CopyRenderer {
	return &CopyRenderer{}
}

func (r *CopyRenderer) Name() string {
	return "copy"
}

func (r *CopyRenderer) Available() bool {
	return false
}

func (r *CopyRenderer) RenderRoom(ctx context.Context, originalPath, outputPath string, scene catalog.Scene) error {
	src, err := os.Open(originalPath)
	if err != nil {
		return fmt.Errorf("failed to open original image: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy image: %w", err)
	}

	return nil
}
