package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_PATH", "HTTP_ADDR", "LOG_LEVEL", "SEED_PATH", "STATIC_DIR", "ENFORCE_CAPACITY", "EVENT_WORKERS"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.LogLevel != "info" || !cfg.EnforceCapacity || cfg.EventWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http_addr: \":9000\"\nenforce_capacity: false\nstatic_dir: web\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDR", ":9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9100" {
		t.Fatalf("env should override file, got %q", cfg.HTTPAddr)
	}
	if cfg.EnforceCapacity {
		t.Fatalf("enforce_capacity from file was ignored")
	}
	if cfg.StaticDir != "web" {
		t.Fatalf("static_dir = %q", cfg.StaticDir)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"ENFORCE_CAPACITY": "maybe",
		"EVENT_WORKERS":    "-1",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", k, v)
			}
		})
	}
}
