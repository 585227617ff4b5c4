package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvFeedURL, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FeedURL != defaultFeedURL {
		t.Fatalf("FeedURL = %q, want %q", cfg.FeedURL, defaultFeedURL)
	}
	if cfg.FeedPath != defaultFeedPath {
		t.Fatalf("FeedPath = %q, want %q", cfg.FeedPath, defaultFeedPath)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.BreakpointWidth != 1380 || cfg.ScrollGap != 100 {
		t.Fatalf("BreakpointWidth/ScrollGap = %d/%d, want 1380/100", cfg.BreakpointWidth, cfg.ScrollGap)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvFeedURL, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
feed_url = "  http://10.0.0.5:9999  "
feed_path = " feeds/all.json "
request_timeout_ms = 2500
breakpoint_width = 1200
cell_width = 8
cell_height = 16
scroll_gap = 40
device = " Touch "
log_file = "  ~/.pixwall/debug.log  "
log_level = "DEBUG"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FeedURL != "http://10.0.0.5:9999" {
		t.Fatalf("FeedURL = %q", cfg.FeedURL)
	}
	if cfg.FeedPath != "feeds/all.json" {
		t.Fatalf("FeedPath = %q", cfg.FeedPath)
	}
	if cfg.RequestTimeout != 2500*time.Millisecond {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.BreakpointWidth != 1200 || cfg.CellWidth != 8 || cfg.CellHeight != 16 {
		t.Fatalf("layout = %d/%d/%d", cfg.BreakpointWidth, cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.ScrollGap != 40 {
		t.Fatalf("ScrollGap = %d, want 40", cfg.ScrollGap)
	}
	if cfg.Device != "touch" {
		t.Fatalf("Device = %q, want touch", cfg.Device)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvFeedURL, "")
	t.Setenv(EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
feed_url = "   "
request_timeout_ms = -5
breakpoint_width = 0
scroll_gap = 0
device = "trackball"
log_level = "chatty"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.FeedURL != want.FeedURL || cfg.RequestTimeout != want.RequestTimeout {
		t.Fatalf("FeedURL/RequestTimeout = %q/%v, want defaults", cfg.FeedURL, cfg.RequestTimeout)
	}
	if cfg.BreakpointWidth != want.BreakpointWidth || cfg.ScrollGap != want.ScrollGap {
		t.Fatalf("BreakpointWidth/ScrollGap = %d/%d, want defaults", cfg.BreakpointWidth, cfg.ScrollGap)
	}
	if cfg.Device != "auto" || cfg.LogLevel != "info" {
		t.Fatalf("Device/LogLevel = %q/%q, want auto/info", cfg.Device, cfg.LogLevel)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvFeedURL, " https://photos.example.com ")
	t.Setenv(EnvLogLevel, "warning")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`feed_url = "http://file"`+"\n"+`log_level = "debug"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FeedURL != "https://photos.example.com" {
		t.Fatalf("FeedURL = %q, want env override", cfg.FeedURL)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`feed_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
