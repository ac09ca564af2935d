package config

import (
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "5000")
	t.Setenv("PUBLIC_BASE_URL", "http://localhost:5000/")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/mutualbook")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("LINK_TTL", "")
}

func TestLoad(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Fatalf("expected postgres default, got %q", cfg.Storage.Driver)
	}
	if cfg.App.PublicBaseURL != "http://localhost:5000" {
		t.Fatalf("base url must lose its trailing slash, got %q", cfg.App.PublicBaseURL)
	}
	if cfg.Link.TTL != 7*24*time.Hour {
		t.Fatalf("expected 7d default ttl, got %v", cfg.Link.TTL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "HTTP_PORT") {
		t.Fatalf("expected missing HTTP_PORT error, got %v", err)
	}
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected missing DATABASE_URL error, got %v", err)
	}
}

func TestLoad_MemoryDriverNeedsNoDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.Storage.Driver)
	}
}

func TestLoad_UnknownDriverRejected(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestLoad_LinkTTLOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LINK_TTL", "48h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Link.TTL != 48*time.Hour {
		t.Fatalf("expected 48h ttl, got %v", cfg.Link.TTL)
	}
}
