package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename strips directory components and scrubs unsafe characters
// from a client-supplied filename. Returns "" when nothing safe remains.
func SanitizeFilename(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)

	safeName := unsafeFilenameChars.ReplaceAllString(nameWithoutExt, "_")
	safeExt := unsafeFilenameChars.ReplaceAllString(ext, "")

	if strings.Trim(safeName, "_.") == "" {
		return ""
	}
	return safeName + safeExt
}

func ValidateFile(fileHeader *multipart.FileHeader, allowedExts []string, maxMB int64) error {
	if fileHeader.Size > maxMB*1024*1024 {
		return fmt.Errorf("file too large: %s", fileHeader.Filename)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	isAllowed := false
	for _, allowedExt := range allowedExts {
		if ext == allowedExt {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		return fmt.Errorf("file type not allowed: %s", ext)
	}

	return nil
}
