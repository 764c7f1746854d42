package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Fatalf("default log level")
	}
	if cfg.Log.Format != "text" {
		t.Fatalf("default log format")
	}
	if cfg.Generate.Count != 1 {
		t.Fatalf("default count")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("load without env should match defaults: %+v", cfg)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	os.Setenv("KSUID_LOG_LEVEL", "debug")
	os.Setenv("KSUID_LOG_FORMAT", "json")
	os.Setenv("KSUID_COUNT", "5")
	t.Cleanup(func() {
		os.Unsetenv("KSUID_LOG_LEVEL")
		os.Unsetenv("KSUID_LOG_FORMAT")
		os.Unsetenv("KSUID_COUNT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("env override level: %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("env override format: %q", cfg.Log.Format)
	}
	if cfg.Generate.Count != 5 {
		t.Fatalf("env override count: %d", cfg.Generate.Count)
	}
}

func TestLoadRejectsBadCount(t *testing.T) {
	os.Setenv("KSUID_COUNT", "0")
	t.Cleanup(func() { os.Unsetenv("KSUID_COUNT") })
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for count < 1")
	}
}
