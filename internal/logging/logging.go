// Package logging builds the zerolog logger used across pixwall. The TUI owns
// stdout, so log events go to a size-rotated file.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure New.
type Options struct {
	File       string    // rotated log file; ignored when Output is set
	Level      string    // debug, info, warn, error
	Output     io.Writer // explicit destination, mainly for tests
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 14
)

// New returns a logger and a closer for its file. With neither File nor
// Output set, events are discarded.
func New(opts Options) (zerolog.Logger, io.Closer) {
	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.Output != nil:
		out = opts.Output
	case strings.TrimSpace(opts.File) != "":
		fileWriter := &lumberjack.Logger{
			Filename:   strings.TrimSpace(opts.File),
			MaxSize:    withDefault(opts.MaxSizeMB, defaultMaxSizeMB), // MB
			MaxBackups: withDefault(opts.MaxBackups, defaultMaxBackups),
			MaxAge:     withDefault(opts.MaxAgeDays, defaultMaxAgeDays), // days
		}
		out = fileWriter
		closer = fileWriter
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(out).
		Level(parseLogLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", "pixwall").
		Logger()
	return logger, closer
}

// parseLogLevel converts string log level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func withDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
