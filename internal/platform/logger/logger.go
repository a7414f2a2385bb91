package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phrazzld/pokedex-api/internal/config"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel converts a configured level name (case-insensitive) to a slog
// level. The boolean is false when the name is not recognised.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NewHandler creates the handler for the given format. Text output goes
// through tint; noColor should be set when w is not a terminal.
func NewHandler(w io.Writer, format string, level slog.Level, noColor bool) slog.Handler {
	if strings.EqualFold(format, FormatText) {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup initializes and configures the application's logging system based on
// the provided configuration and sets the result as the default logger.
//
// When cfg.LogFile is set, output is also written to that file with size
// based rotation; the returned Closer releases it and must be called on
// shutdown. Otherwise the Closer is a no-op.
func Setup(cfg config.ServerConfig) (*slog.Logger, io.Closer, error) {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		// Use a temporary logger so the warning is visible before setup completes.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	var (
		out     io.Writer = os.Stdout
		closer  io.Closer = nopCloser{}
		noColor           = !IsTerminal(os.Stdout)
	)

	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
		noColor = true
	}

	logger := slog.New(NewHandler(out, cfg.LogFormat, level, noColor))
	slog.SetDefault(logger)

	if cfg.LogFile != "" {
		logger.Info("file logging enabled", "path", cfg.LogFile)
	}

	return logger, closer, nil
}
