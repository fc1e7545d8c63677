package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewTextHandler(openLogFile("logs"), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// openLogFile returns io.Discard when the log file cannot be opened.
func openLogFile(dir string) io.Writer {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return io.Discard
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "readingfmt.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return io.Discard
	}
	return logFile
}

// SetOutput redirects the structured log, mostly for tests.
func SetOutput(w io.Writer, level slog.Level) {
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
