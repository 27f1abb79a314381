package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseLevel converts a level name (debug, info, warn, error) to slog.Level.
// Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat returns FormatJSON for "json" and FormatText otherwise.
func ParseFormat(format string) Format {
	if strings.EqualFold(strings.TrimSpace(format), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Init installs the global logger writing to stdout. Call once at startup.
func Init(level slog.Level, format Format) {
	InitWriter(os.Stdout, level, format)
}

// InitWriter installs the global logger writing to w.
func InitWriter(w io.Writer, level slog.Level, format Format) {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey {
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler).With("app", "portfolio"))
}

func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
