package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings pixwall reads at startup.
type Config struct {
	FeedURL         string
	FeedPath        string
	RequestTimeout  time.Duration
	BreakpointWidth int
	CellWidth       int
	CellHeight      int
	ScrollGap       int
	Device          string
	LogFile         string
	LogLevel        string
}

const (
	defaultConfigPath      = "~/.config/pixwall/config.toml"
	defaultLogFile         = "~/.local/share/pixwall/pixwall.log"
	defaultFeedURL         = "http://127.0.0.1:8080"
	defaultFeedPath        = "data/pictures.json"
	defaultRequestTimeout  = 10 * time.Second
	defaultBreakpointWidth = 1380
	defaultCellWidth       = 10
	defaultCellHeight      = 20
	defaultScrollGap       = 100
	defaultDevice          = "auto"
	defaultLogLevel        = "info"

	// EnvFeedURL overrides feed_url.
	EnvFeedURL = "PIXWALL_FEED_URL"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "PIXWALL_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		FeedURL:         defaultFeedURL,
		FeedPath:        defaultFeedPath,
		RequestTimeout:  defaultRequestTimeout,
		BreakpointWidth: defaultBreakpointWidth,
		CellWidth:       defaultCellWidth,
		CellHeight:      defaultCellHeight,
		ScrollGap:       defaultScrollGap,
		Device:          defaultDevice,
		LogFile:         mustExpand(defaultLogFile),
		LogLevel:        defaultLogLevel,
	}
}

// Load locates and parses the pixwall config, falling back to defaults when
// missing. Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv(os.LookupEnv)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FeedURL          string `toml:"feed_url"`
		FeedPath         string `toml:"feed_path"`
		RequestTimeoutMS int    `toml:"request_timeout_ms"`
		BreakpointWidth  int    `toml:"breakpoint_width"`
		CellWidth        int    `toml:"cell_width"`
		CellHeight       int    `toml:"cell_height"`
		ScrollGap        int    `toml:"scroll_gap"`
		Device           string `toml:"device"`
		LogFile          string `toml:"log_file"`
		LogLevel         string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.FeedURL); v != "" {
		cfg.FeedURL = v
	}
	if v := strings.TrimSpace(raw.FeedPath); v != "" {
		cfg.FeedPath = v
	}
	if raw.RequestTimeoutMS > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutMS) * time.Millisecond
	}
	if raw.BreakpointWidth > 0 {
		cfg.BreakpointWidth = raw.BreakpointWidth
	}
	if raw.CellWidth > 0 {
		cfg.CellWidth = raw.CellWidth
	}
	if raw.CellHeight > 0 {
		cfg.CellHeight = raw.CellHeight
	}
	if raw.ScrollGap > 0 {
		cfg.ScrollGap = raw.ScrollGap
	}
	if v := normalizeDevice(raw.Device); v != "" {
		cfg.Device = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := normalizeLevel(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvFeedURL); ok && strings.TrimSpace(v) != "" {
		c.FeedURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if level := normalizeLevel(v); level != "" {
			c.LogLevel = level
		}
	}
}

func normalizeDevice(value string) string {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "auto", "pointer", "touch":
		return v
	default:
		return ""
	}
}

func normalizeLevel(value string) string {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "debug", "info", "warn", "error":
		return v
	case "warning":
		return "warn"
	default:
		return ""
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
