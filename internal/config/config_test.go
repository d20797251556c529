package config

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_UPLOAD_MB", "RENDER_TIMEOUT", "RENDER_API_URL"} {
		t.Setenv(key, "")
	}

	cfg := New()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageCfg.MaxUploadMB != 25 {
		t.Errorf("MaxUploadMB = %d, want 25", cfg.StorageCfg.MaxUploadMB)
	}
	if cfg.RenderCfg.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v, want 120s", cfg.RenderCfg.Timeout)
	}
	if cfg.RenderCfg.APIURL != "" {
		t.Errorf("APIURL = %q, want empty", cfg.RenderCfg.APIURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("RENDER_TIMEOUT", "30s")
	t.Setenv("RENDER_API_URL", "http://renderer:9000")

	cfg := New()

	if cfg.StorageCfg.MaxUploadMB != 5 {
		t.Errorf("MaxUploadMB = %d, want 5", cfg.StorageCfg.MaxUploadMB)
	}
	if cfg.RenderCfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.RenderCfg.Timeout)
	}
	if cfg.RenderCfg.APIURL != "http://renderer:9000" {
		t.Errorf("APIURL = %q", cfg.RenderCfg.APIURL)
	}
}

func TestInvalidNumericEnvFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Setenv("RENDER_TIMEOUT", "soon")

	cfg := New()

	if cfg.StorageCfg.MaxUploadMB != 25 {
		t.Errorf("MaxUploadMB = %d, want the default 25", cfg.StorageCfg.MaxUploadMB)
	}
	if cfg.RenderCfg.Timeout != 120*time.Second {
		t.Errorf("Timeout = %v, want the default 120s", cfg.RenderCfg.Timeout)
	}
}
