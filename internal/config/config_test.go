package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("unexpected dir %q", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("/tmp/custom")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != "/tmp/custom" || cfg.DataPath() != "/tmp/custom" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.SyncList != DefaultSyncList || cfg.SyncRate != DefaultSyncRate {
		t.Errorf("unexpected sync defaults: %+v", cfg)
	}
	if cfg.TokenPath() != filepath.Join("/tmp/custom", TokenFile) {
		t.Errorf("unexpected token path %q", cfg.TokenPath())
	}
}

func TestLoadEnv_FileThenProcessEnv(t *testing.T) {
	dir := t.TempDir()
	content := "WORKTRACK_DATA_DIR=/srv/tasks\nWORKTRACK_SYNC_LIST=\"Office deadlines\"\nWORKTRACK_SYNC_RATE=2\n"
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvSyncRate, "0.5")

	cfg, _ := New(dir)
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.DataPath() != "/srv/tasks" {
		t.Errorf("expected data dir from file, got %q", cfg.DataPath())
	}
	if cfg.SyncList != "Office deadlines" {
		t.Errorf("expected quoted list title from file, got %q", cfg.SyncList)
	}
	if cfg.SyncRate != 0.5 {
		t.Errorf("expected process env to win, got %v", cfg.SyncRate)
	}
	if _, ok := os.LookupEnv(EnvDataDir); ok {
		t.Error("LoadEnv must not modify the process environment")
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	cfg, _ := New(t.TempDir())
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.DataPath() != cfg.Dir {
		t.Errorf("expected data dir to default to config dir")
	}
}

func TestLoadEnv_BadRate(t *testing.T) {
	t.Setenv(EnvSyncRate, "fast")
	cfg, _ := New(t.TempDir())
	if err := cfg.LoadEnv(); err == nil {
		t.Error("expected error for non-numeric rate")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{}
	cfg.Logger(&buf).Printf("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output without --debug, got %q", buf.String())
	}
	cfg.Debug = true
	cfg.Logger(&buf).Printf("shown %d", 1)
	if buf.String() != "debug: shown 1\n" {
		t.Errorf("unexpected debug output %q", buf.String())
	}
}
