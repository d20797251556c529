package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Port        string
	PostgresCfg PostgresConfig
	StorageCfg  StorageConfig
	RenderCfg   RenderConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type StorageConfig struct {
	UploadDir   string
	OutputDir   string
	StaticDir   string
	MaxUploadMB int64
}

type RenderConfig struct {
	// APIURL is the base URL of the external image-to-image renderer.
	// Empty means the renderer is unavailable and generation degrades to a
	// plain copy of the uploaded photo.
	APIURL  string
	Timeout time.Duration
}

func New() *AppConfig {
	return &AppConfig{
		Port: getEnvOrDefault("PORT", "8080"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "interioai"),
			Username: getEnvOrDefault("POSTGRES_USER", "user"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "password"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		StorageCfg: StorageConfig{
			UploadDir:   getEnvOrDefault("UPLOAD_DIR", "uploads"),
			OutputDir:   getEnvOrDefault("OUTPUT_DIR", "output"),
			StaticDir:   getEnvOrDefault("STATIC_DIR", "static"),
			// Large enough for current phone camera photos.
			MaxUploadMB: getEnvOrDefaultInt64("MAX_UPLOAD_MB", 25),
		},
		RenderCfg: RenderConfig{
			APIURL:  getEnvOrDefault("RENDER_API_URL", ""),
			Timeout: getEnvOrDefaultDuration("RENDER_TIMEOUT", 120*time.Second),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvOrDefaultDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
