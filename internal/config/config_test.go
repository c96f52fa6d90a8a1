package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("GAMESHELF_WEB_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Search.Debounce.Std() != 250*time.Millisecond {
		t.Fatalf("expected default debounce, got %v", cfg.Search.Debounce)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Server.Addr())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("GAMESHELF_WEB_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("GAMESHELF_WEB_BACKEND_URL", "")
	t.Setenv("GAMESHELF_WEB_ENV", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: "9000"
  dev: true
backend:
  base_url: "http://localhost:5000"
search:
  debounce: 100ms
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" || !cfg.Server.Dev {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Backend.BaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected backend config: %+v", cfg.Backend)
	}
	if cfg.Search.Debounce.Std() != 100*time.Millisecond {
		t.Fatalf("unexpected debounce: %v", cfg.Search.Debounce)
	}
	if cfg.Server.ReadTimeout.Std() != 15*time.Second {
		t.Fatalf("zero fields must keep defaults, got %v", cfg.Server.ReadTimeout)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("GAMESHELF_WEB_PORT", "7777")
	t.Setenv("GAMESHELF_WEB_BACKEND_URL", "http://api:5000")
	t.Setenv("GAMESHELF_WEB_ENV", "prod")
	t.Setenv("GAMESHELF_WEB_DEV", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7777" {
		t.Fatalf("expected env port, got %q", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://api:5000" {
		t.Fatalf("expected env backend url, got %q", cfg.Backend.BaseURL)
	}
	if !cfg.Session.Secure || cfg.Server.Dev {
		t.Fatalf("prod env must force secure cookies and disable dev: %+v", cfg)
	}
}
