package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var base = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Configure replaces the process logger. Format is "text" or "json".
func Configure(level, format string, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	base = slog.New(handler)
}

func parseLevel(level string) slog.Level {
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

func Info(format string, v ...interface{}) {
	base.Info(fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	base.Error(fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	base.Debug(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...interface{}) {
	base.Warn(fmt.Sprintf(format, v...))
}

// Fatal logs at error level and exits.
func Fatal(format string, v ...interface{}) {
	base.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// With returns a structured logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return base.With(args...)
}

// LogWriteFailure records a rejected database write that is not surfaced to the user.
func LogWriteFailure(collection, id, action string, err error) {
	Warn("Write failure: action=%s, collection=%s, id=%s, error=%v", action, collection, id, err)
}
