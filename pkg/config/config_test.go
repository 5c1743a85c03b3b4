package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSubdir, "")
	t.Setenv(EnvWorkers, "")
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogLevel, "")

	cfg := FromEnv()
	if cfg.Subdir != DefaultSubdir {
		t.Errorf("Subdir = %q", cfg.Subdir)
	}
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	tests := []struct {
		name        string
		workers     string
		wantWorkers int
	}{
		{"valid", "3", 3},
		{"not a number", "many", runtime.GOMAXPROCS(0)},
		{"zero", "0", runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSubdir, "clusterblast")
			t.Setenv(EnvWorkers, tt.workers)
			t.Setenv(EnvDB, "results.db")

			cfg := FromEnv()
			if cfg.Subdir != "clusterblast" || cfg.DBPath != "results.db" {
				t.Errorf("unexpected config %+v", cfg)
			}
			if cfg.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d, want %d", cfg.Workers, tt.wantWorkers)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("PHYLOKIT_SUBDIR=fromfile\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvSubdir, "")
	os.Unsetenv(EnvSubdir)

	if err := LoadDotenv(envFile); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := FromEnv().Subdir; got != "fromfile" {
		t.Errorf("Subdir = %q, want fromfile", got)
	}

	if err := LoadDotenv(filepath.Join(dir, "missing.env")); err == nil {
		t.Error("expected error for a missing .env")
	}
}
