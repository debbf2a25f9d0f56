package helper

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger: JSON lines written to stdout and
// to a size-rotated log file.
func NewLogger(filePath string) *slog.Logger {
	_ = os.MkdirAll(filepath.Dir(filePath), 0o755)

	rot := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	}
	mw := io.MultiWriter(os.Stdout, rot)

	h := slog.NewJSONHandler(mw, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h).With("component", "bitsbites")
}
