package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Words.Path != nil || cfg.Server.Addr != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[words]
path = "lists/en.txt"

[server]
addr = "127.0.0.1:9000"

[game]
log-file = "/tmp/ws.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Words.Path == nil || *cfg.Words.Path != "lists/en.txt" {
		t.Fatalf("unexpected words path: %v", cfg.Words.Path)
	}
	if cfg.Server.Addr == nil || *cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %v", cfg.Server.Addr)
	}
	if cfg.Game.LogFile == nil || *cfg.Game.LogFile != "/tmp/ws.log" {
		t.Fatalf("unexpected log file: %v", cfg.Game.LogFile)
	}
	if cfg.Game.DBPath != nil {
		t.Fatalf("expected db path unset, got %v", *cfg.Game.DBPath)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[words]\nlang = \"en\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "words.lang") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordserver", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordserver", "wordserver.db") {
		t.Fatalf("unexpected db path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/data", "wordserver", "wordserver.log") {
		t.Fatalf("unexpected log path %s", got)
	}
}
