// Package storage persists uploaded originals and generated outputs on the
// local file system, addressed by generated filenames.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"interioai-backend/internal/config"
)

type LocalStore struct {
	uploadDir string
	outputDir string
}

func NewLocalStore(cfg config.StorageConfig) (*LocalStore, error) {
	for _, dir := range []string{cfg.UploadDir, cfg.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	return &LocalStore{
		uploadDir: cfg.UploadDir,
		outputDir: cfg.OutputDir,
	}, nil
}

func (s *LocalStore) UploadPath(name string) string {
	return filepath.Join(s.uploadDir, filepath.Base(name))
}

func (s *LocalStore) OutputPath(name string) string {
	return filepath.Join(s.outputDir, filepath.Base(name))
}

// SaveUpload streams an uploaded photo into the upload directory and returns
// its path.
func (s *LocalStore) SaveUpload(name string, r io.Reader) (string, error) {
	path := s.UploadPath(name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}

func (s *LocalStore) OutputExists(name string) bool {
	info, err := os.Stat(s.OutputPath(name))
	return err == nil && info.Size() > 0
}

// CopyToOutput writes a byte-identical copy of src into the output directory.
func (s *LocalStore) CopyToOutput(srcPath, outputName string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(s.OutputPath(outputName))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy image: %w", err)
	}

	return nil
}
