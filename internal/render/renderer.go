// Package render abstracts the external AI image-to-image capability behind a
// Renderer interface with two implementations: an HTTP adapter to the real
// renderer and a pass-through copy adapter used when no renderer is
// configured. The implementation is selected once at startup.
package render

import (
	"context"
	"log"

	"interioai-backend/internal/catalog"
	"interioai-backend/internal/config"
)

type Renderer interface {
	Name() string
	// Available reports whether a real AI renderer backs this instance.
	// The health endpoint surfaces this flag.
	Available() bool
	// RenderRoom reads the original photo, applies the scene and writes the
	// result to outputPath. An error (or a missing output file) makes the
	// caller fall back to copying the original.
	RenderRoom(ctx context.Context, originalPath, outputPath string, scene catalog.Scene) error
}

// NewFromConfig selects the renderer implementation at startup.
func NewFromConfig(cfg config.RenderConfig) Renderer {
	if cfg.APIURL == "" {
		log.Printf("AI renderer not configured, generation will copy images only")
		return NewCopyRenderer()
	}
	log.Printf("AI renderer configured at %s", cfg.APIURL)
	return NewHTTPRenderer(cfg.APIURL, cfg.Timeout)
}
