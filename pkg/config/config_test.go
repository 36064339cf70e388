package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev {
		t.Fatalf("expected App.Env to default to %q, got %q", AppEnvDev, cfg.App.Env)
	}
	if cfg.Store.Backend != StoreBackendFile {
		t.Fatalf("expected default store backend %q, got %q", StoreBackendFile, cfg.Store.Backend)
	}
	if got := cfg.Checkout.ProcessingDelay; got != 1500*time.Millisecond {
		t.Fatalf("expected processing delay 1.5s, got %v", got)
	}
	if cfg.Seed.AdminUsername == "" {
		t.Fatal("expected a seeded admin username")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvStoreBackend, "redis")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.Store.Backend != StoreBackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Store.Backend)
	}
	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvStoreBackend, "dynamo")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported store backend")
	}
}
